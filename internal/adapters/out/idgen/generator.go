// Package idgen provides the identifier generator used for new records.
package idgen

import "github.com/google/uuid"

// Generator implements ports.IdentifierGenerator backed by random UUIDs.
// Version-4 UUIDs are unique among all identifiers in the working set with
// overwhelming probability, which satisfies the generator contract.
type Generator struct{}

// NewGenerator creates a UUID-backed identifier generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns a fresh unique identifier string.
func (g *Generator) Next() string {
	return uuid.NewString()
}
