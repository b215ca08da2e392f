package models

// Role identifies which kind of account a token belongs to.
type Role string

const (
	RoleUser Role = "USER"
	RoleShop Role = "SHOP"
)

// Authority tags derived from the role, used by route rules.
const (
	AuthorityUser = "ROLE_USER"
	AuthorityShop = "ROLE_SHOP"
)

// Principal is the resolved identity of the caller for one request.
// Exactly one of Customer or Shop is set, matching Role; it is bound once
// by the access gate and never mutated afterwards.
type Principal struct {
	Role     Role
	Customer *Customer
	Shop     *TireShop
}

// NewCustomerPrincipal wraps a customer record as a request principal.
func NewCustomerPrincipal(c *Customer) *Principal {
	return &Principal{Role: RoleUser, Customer: c}
}

// NewShopPrincipal wraps a shop record as a request principal.
func NewShopPrincipal(s *TireShop) *Principal {
	return &Principal{Role: RoleShop, Shop: s}
}

// ID returns the identity id of the active variant.
func (p *Principal) ID() int {
	switch p.Role {
	case RoleUser:
		return p.Customer.ID
	case RoleShop:
		return p.Shop.ID
	}
	return 0
}

// Email returns the email of the active variant.
func (p *Principal) Email() string {
	switch p.Role {
	case RoleUser:
		return p.Customer.Email
	case RoleShop:
		return p.Shop.Email
	}
	return ""
}

// Authority returns the role-derived authority tag (ROLE_USER or ROLE_SHOP).
func (p *Principal) Authority() string {
	if p.Role == RoleShop {
		return AuthorityShop
	}
	return AuthorityUser
}

// IsCustomer reports whether the principal is a customer account.
func (p *Principal) IsCustomer() bool {
	return p.Role == RoleUser && p.Customer != nil
}

// IsShop reports whether the principal is a shop operator account.
func (p *Principal) IsShop() bool {
	return p.Role == RoleShop && p.Shop != nil
}
