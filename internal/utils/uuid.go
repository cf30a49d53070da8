package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for OAuth authorization codes. UUIDv7
// keeps the codes roughly sortable by issue time; when the random source
// fails, a plain v4 id is used instead.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}

	return uuid.NewString()
}
