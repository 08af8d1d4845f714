package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a parsed or freshly signed session token.
//
// The "sub" claim carries the owner id. OwnerID caches it after parsing so
// handlers never re-read the claim set.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`

	OwnerID int64 `json:"-"`
}

// GetOwnerID parses the subject claim as a base-10 owner id.
func (t *Token) GetOwnerID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting owner id from token: %w", err)
	}

	ownerID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting owner id from token to int64: %w", err)
	}

	return ownerID, nil
}

func (t *Token) String() string {
	return t.SignedString
}
