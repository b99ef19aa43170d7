package local

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nithishkannan87/AIM-FOOTWEAR/internal/identity"
)

// tokenClaims is the payload of an ID token.
type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed HS256 ID token for the account, valid for the
// provider's configured TTL.
func (p *Provider) IssueToken(acct *identity.Account) (string, error) {
	now := time.Now().UTC()
	claims := &tokenClaims{
		Email: acct.Email,
		Name:  acct.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   acct.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.tokenTTL)),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign id token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies an ID token and resolves it to the
// account it was issued for.
func (p *Provider) ValidateToken(tokenString string) (*identity.Account, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse id token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid id token claims")
	}

	return &identity.Account{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}
