package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/tyrehub/tyrehub/internal/pkg/jwt"
	"github.com/tyrehub/tyrehub/internal/pkg/logger"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
)

// principalKey is the echo context key the resolved principal is bound to.
const principalKey = "principal"

// PrincipalResolver turns verified token claims into a concrete principal
// by looking up the identity store.
type PrincipalResolver interface {
	Resolve(ctx context.Context, claims *jwtpkg.Claims) (*models.Principal, error)
}

// RouteRule is one entry of the route→role policy. Pattern is an exact path
// or a prefix ending in "/*". An empty Method matches every method. Roles
// holds the authority tags allowed through; an empty list on a non-public
// rule means "authenticated, any role".
type RouteRule struct {
	Method  string
	Pattern string
	Roles   []string
	Public  bool
}

func (r RouteRule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if strings.HasSuffix(r.Pattern, "/*") {
		prefix := strings.TrimSuffix(r.Pattern, "/*")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.Pattern
}

// specificity orders rules so that longer path patterns win, and a
// method-bound rule beats an any-method rule on the same pattern.
func (r RouteRule) specificity() int {
	s := len(strings.TrimSuffix(r.Pattern, "/*")) * 2
	if r.Method != "" {
		s++
	}
	return s
}

// AccessGate runs once per inbound request: it extracts the bearer
// credential, validates it, resolves a principal and enforces the route's
// role rules before the handler runs. Invalid or unresolvable tokens
// degrade to anonymous so public routes stay reachable; only the role
// check surfaces 401/403.
type AccessGate struct {
	tokens   *jwtpkg.TokenService
	resolver PrincipalResolver
	rules    []RouteRule
	log      *logger.AppLogger
}

// NewAccessGate creates the gate from its collaborators and a rule set.
func NewAccessGate(tokens *jwtpkg.TokenService, resolver PrincipalResolver, rules []RouteRule, log *logger.AppLogger) *AccessGate {
	return &AccessGate{
		tokens:   tokens,
		resolver: resolver,
		rules:    rules,
		log:      log,
	}
}

// Middleware returns the echo middleware enforcing the gate.
func (g *AccessGate) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			g.bindPrincipal(c)
			return g.authorize(c, next)
		}
	}
}

// bindPrincipal establishes the caller identity for the request scope.
// Every failure path leaves the request anonymous instead of aborting it.
func (g *AccessGate) bindPrincipal(c echo.Context) {
	// Idempotency guard against double-processing
	if _, ok := PrincipalFromContext(c); ok {
		return
	}

	token, ok := bearerToken(c)
	if !ok {
		return
	}

	claims, err := g.tokens.Validate(token)
	if err != nil {
		g.log.WithError(err).Debug("token validation failed, continuing as anonymous")
		return
	}

	principal, err := g.resolver.Resolve(c.Request().Context(), claims)
	if err != nil {
		g.log.WithError(err).Debug("principal resolution failed, continuing as anonymous")
		return
	}

	c.Set(principalKey, principal)
}

func (g *AccessGate) authorize(c echo.Context, next echo.HandlerFunc) error {
	rule, covered := g.matchRule(c.Request().Method, c.Request().URL.Path)

	if covered && rule.Public {
		return next(c)
	}

	principal, authenticated := PrincipalFromContext(c)
	if !authenticated {
		return utils.UnauthorizedResponse(c, "authentication required")
	}

	// A route not covered by any rule, or a covered rule without roles,
	// requires authentication but accepts any role.
	if !covered || len(rule.Roles) == 0 {
		return next(c)
	}

	authority := principal.Authority()
	for _, allowed := range rule.Roles {
		if allowed == authority {
			return next(c)
		}
	}

	return utils.ForbiddenResponse(c, "insufficient role")
}

func (g *AccessGate) matchRule(method, path string) (RouteRule, bool) {
	var best RouteRule
	bestScore := -1
	for _, rule := range g.rules {
		if !rule.matches(method, path) {
			continue
		}
		if score := rule.specificity(); score > bestScore {
			best = rule
			bestScore = score
		}
	}
	return best, bestScore >= 0
}

// bearerToken extracts the bearer credential from the Authorization header.
// Absence or a malformed header is not an error, just "no credential".
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// PrincipalFromContext returns the principal bound to the request scope.
func PrincipalFromContext(c echo.Context) (*models.Principal, bool) {
	principal, ok := c.Get(principalKey).(*models.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}
