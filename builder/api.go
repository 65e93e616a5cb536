package builder

import (
	"fmt"

	"github.com/kylerchin/bast-routing-homework/roadgraph"
)

// Constructor applies a deterministic mutation to a fresh road graph using
// the resolved builderConfig. Constructors must validate parameters early,
// return sentinel errors, and never panic.
type Constructor func(g *roadgraph.Graph, cfg *builderConfig) error

// BuildGraph creates a new empty road graph, resolves bopts into a
// builderConfig, and applies every constructor in order. The first
// constructor error aborts the build and is wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*roadgraph.Graph, error) {
	g := roadgraph.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
