package models

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator assigns unique identifiers to elements and relationships.
// The Model is the only caller; generated identifiers must be unique
// within a single model.
type IDGenerator interface {
	GenerateID() string
}

// UUIDGenerator is the default IDGenerator. It produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) GenerateID() string {
	return uuid.New().String()
}

// SequentialIDGenerator produces deterministic identifiers ("1", "2",
// ...), optionally with a prefix. Deterministic identifiers keep
// serialized workspaces diffable and make tests stable.
type SequentialIDGenerator struct {
	prefix string
	next   int
}

func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	return &SequentialIDGenerator{prefix: prefix}
}

func (g *SequentialIDGenerator) GenerateID() string {
	g.next++
	return fmt.Sprintf("%s%d", g.prefix, g.next)
}

// GenerateID generates a unique ID with the given prefix
// Example: GenerateID("workspace") -> "workspace:uuid-here"
func GenerateID(prefix string) string {
	return fmt.Sprintf("%s:%s", prefix, uuid.New().String())
}
