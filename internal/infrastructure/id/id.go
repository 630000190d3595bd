// Package id generates prefixed NanoID identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/bnema/omnitab/internal/domain/entity"
)

const (
	// TabPrefix prefixes tab identifiers.
	TabPrefix = "tab"

	shortAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	shortSize     = 10
)

// Generate creates a prefixed unique ID, e.g. "tab-V1StGXR8_Z5jdHi6B-myT".
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// Short creates a compact lowercase ID for display in the CLI, e.g. "tab-4f9k2m0x7q".
func Short(prefix string) (string, error) {
	id, err := gonanoid.Generate(shortAlphabet, shortSize)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// MustGenerate is like Generate but panics if ID generation fails.
func MustGenerate(prefix string) string {
	id, err := Generate(prefix)
	if err != nil {
		panic(fmt.Sprintf("failed to generate ID: %v", err))
	}
	return id
}

// TabIDs returns a generator of short tab IDs.
func TabIDs() entity.IDGenerator {
	return func() string {
		id, err := Short(TabPrefix)
		if err != nil {
			return MustGenerate(TabPrefix)
		}
		return id
	}
}
