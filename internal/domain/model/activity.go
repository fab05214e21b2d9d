// Package model contains the core domain types for the activities service.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// Activity is a named extracurricular offering with a capacity and a roster
// of participant emails. The name is the unique key; it is serialized as the
// key of the enclosing JSON object rather than as a field.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registered reports whether email is already on the roster.
func (a *Activity) Registered(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft returns the remaining capacity. It can go negative when
// enforcement is disabled and the roster grows past MaxParticipants.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Clone returns a deep copy so callers can hand activities across the API
// boundary without aliasing the registry's roster slice.
func (a *Activity) Clone() Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	return c
}

// Validate checks the structural invariants used when seeding the registry.
func (a *Activity) Validate() error {
	if a.Name == "" {
		return errors.New("activity name must not be empty")
	}
	if a.MaxParticipants <= 0 {
		return fmt.Errorf("activity %q: max_participants must be positive", a.Name)
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, email := range a.Participants {
		if _, dup := seen[email]; dup {
			return fmt.Errorf("activity %q: duplicate participant %q", a.Name, email)
		}
		seen[email] = struct{}{}
	}
	return nil
}

// Catalog is an insertion-ordered collection of activities. It marshals to a
// JSON object keyed by activity name, preserving order; a plain map would
// serialize with sorted keys.
type Catalog []Activity

// MarshalJSON implements json.Marshaler.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c[i].Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
