package http

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"tailor/internal/core/domain/model/kernel"
)

const customerIDKey = "tailor.customer_id"

var ErrMissingBearerToken = errors.New("missing bearer token")

// CustomerAuth verifies HS256 portal tokens. The subject claim carries the
// customer id.
type CustomerAuth struct {
	secret []byte
	issuer string
}

// NewCustomerAuth creates the verifier. An empty issuer accepts any issuer.
func NewCustomerAuth(secret, issuer string) CustomerAuth {
	return CustomerAuth{secret: []byte(secret), issuer: issuer}
}

// Middleware authenticates requests to paths under prefix and leaves every
// other route untouched.
func (a CustomerAuth) Middleware(prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, prefix) {
				return next(c)
			}

			customerID, err := a.Authenticate(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c)
			}

			c.Set(customerIDKey, customerID)
			return next(c)
		}
	}
}

// Authenticate parses an Authorization header value and returns the customer.
func (a CustomerAuth) Authenticate(header string) (kernel.UUID, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return kernel.UUID{}, ErrMissingBearerToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromString(claims.Subject)
}

// Issue signs a token for customerID valid for ttl.
func (a CustomerAuth) Issue(customerID kernel.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   customerID.String(),
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// CustomerIDFromContext returns the customer resolved by the middleware.
func CustomerIDFromContext(c echo.Context) (kernel.UUID, bool) {
	id, ok := c.Get(customerIDKey).(kernel.UUID)
	return id, ok
}
