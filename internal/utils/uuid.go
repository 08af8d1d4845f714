package utils

import "github.com/google/uuid"

// NewTimeOrderedID returns a version 7 uuid string. Ids created by one
// process sort by creation time. If the entropy source fails a random
// version 4 id is returned instead.
func NewTimeOrderedID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// IsUUID reports whether s parses as a uuid in any accepted form.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// UUIDGenerator hands out client-side ids for locally created records.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (*UUIDGenerator) Generate() string {
	return NewTimeOrderedID()
}
