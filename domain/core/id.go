package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// DecisionID identifies a persisted decision record. Mandates and proposals
// are owned upstream and carry no IDs here.
type DecisionID ID

// String returns the string representation
func (id DecisionID) String() string { return ID(id).String() }

// ParseDecisionID parses a string into DecisionID
func ParseDecisionID(s string) (DecisionID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("decision ID cannot be empty")
	}
	return DecisionID(s), nil
}
