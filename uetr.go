package iso20022

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUETR returns a fresh Unique End-to-end Transaction Reference.
func NewUETR() UUIDv4Identifier {
	return UUIDv4Identifier(uuid.New().String())
}

// ParseUETR parses a UETR in any of the forms uuid.Parse accepts and
// returns it in the canonical lower case form. Only version 4 UUIDs are
// accepted.
func ParseUETR(s string) (UUIDv4Identifier, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parse uetr: %w", err)
	}
	uetr := UUIDv4Identifier(id.String())
	if err := uetr.Validate(); err != nil {
		return "", err
	}
	return uetr, nil
}
