// Package utils holds small helpers shared by the server and the client:
// context keys, session tokens, JSON responses, the HTTP client, id
// generation and request fingerprints.
package utils

import (
	"context"
)

// contextKey prevents collisions with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the context key under which the auth middleware stores
// the authenticated owner id.
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, int64(42))
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext returns the owner id and whether it was present with
// the expected int64 type.
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	return ownerID, ok
}
