package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Domain-specific hash types for audit trails of model calls
type (
	PromptHash   Hash
	ResponseHash Hash
)

func NewPromptHash(data []byte) PromptHash     { return PromptHash(NewHash(data)) }
func NewResponseHash(data []byte) ResponseHash { return ResponseHash(NewHash(data)) }

func (h PromptHash) String() string   { return Hash(h).String() }
func (h ResponseHash) String() string { return Hash(h).String() }
