package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ElectronicSignature is a recorded attestation. The password is kept as
// captured; it is never verified or hashed.
type ElectronicSignature struct {
	ID           string
	SignedBy     string
	SignedByRole Role
	SignedAt     time.Time
	Meaning      string
	Reason       string
	Password     string
}

func (s *ElectronicSignature) Clone() *ElectronicSignature {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// String renders the signature without the password.
func (s ElectronicSignature) String() string {
	out := fmt.Sprintf("%s (%s) signed %q at %s", s.SignedBy, s.SignedByRole, s.Meaning, s.SignedAt.Format(time.RFC3339))
	if s.Reason != "" {
		out += ", reason: " + s.Reason
	}
	return out
}

// MarshalJSON omits the password.
func (s ElectronicSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           string    `json:"signatureId"`
		SignedBy     string    `json:"signedBy"`
		SignedByRole Role      `json:"signedByRole"`
		SignedAt     time.Time `json:"signedAt"`
		Meaning      string    `json:"meaning"`
		Reason       string    `json:"reason,omitempty"`
	}{s.ID, s.SignedBy, s.SignedByRole, s.SignedAt, s.Meaning, s.Reason})
}
