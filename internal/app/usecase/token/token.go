package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	usecase "github.com/avGenie/go-order-tracker/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

type claims struct {
	jwt.RegisteredClaims
	CustomerID string `json:"customerId"`
}

// Manager signs and verifies HS256 bearer tokens carrying a customer id.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) BuildJWTString(customerID entity.CustomerID) (string, error) {
	issuedAt := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.ttl)),
		},
		CustomerID: customerID.String(),
	})

	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing jwt token: %w", err)
	}

	return tokenString, nil
}

func (m *Manager) GetCustomerID(tokenString string) (entity.CustomerID, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.CustomerID(""), usecase.ErrTokenExpired
		}

		return entity.CustomerID(""), fmt.Errorf("%w: %w", usecase.ErrTokenNotValid, err)
	}

	if !token.Valid {
		return entity.CustomerID(""), usecase.ErrTokenNotValid
	}

	return entity.CustomerID(parsed.CustomerID), nil
}

func (m *Manager) GetCustomerIDFromAuthHeader(header string) (entity.CustomerID, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return entity.CustomerID(""), fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return entity.CustomerID(""), fmt.Errorf("first auth header part is invalid")
	}

	customerID, err := m.GetCustomerID(headerParts[1])
	if err != nil {
		return entity.CustomerID(""), fmt.Errorf("error while getting customer id from token: %w", err)
	}

	return customerID, nil
}
