package services

import "github.com/google/uuid"

// ReferenceGenerator mints opaque tokens, used both as fallback booking ids
// and as the base of Swish payment references. Injected so tests can supply
// fixed tokens.
type ReferenceGenerator interface {
	NewToken() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewToken() string {
	return uuid.NewString()
}
