package models

// AuthRequest is a login payload for either account kind
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCustomerRequest is the customer registration payload
type RegisterCustomerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// RegisterShopRequest is the shop registration payload
type RegisterShopRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	OpeningHour string   `json:"opening_hour"`
	ClosingHour string   `json:"closing_hour"`
}

// AuthResponse is returned by login and registration endpoints
type AuthResponse struct {
	Token     string `json:"token"`
	ID        int    `json:"id"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
	ExpiresAt int64  `json:"expires_at"`
}
