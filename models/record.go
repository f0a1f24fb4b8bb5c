// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a serialized record omits the corresponding field.
const (
	DefaultDigits uint32 = 6
	DefaultStep   uint64 = 30
)

// ErrMissingSecret is returned when a serialized record has no secret
// field. Every other field has a default; the secret does not.
var ErrMissingSecret = errors.New("record is missing the required secret field")

// Secret is raw HMAC key material. On the wire it is an array of byte
// values 0-255 in both JSON and YAML, not a base64 string, matching the
// layout of existing record files.
type Secret []byte

// MarshalJSON implements [json.Marshaler].
func (s Secret) MarshalJSON() ([]byte, error) {
	values := make([]uint16, len(s))
	for i, b := range s {
		values[i] = uint16(b)
	}

	return json.Marshal(values)
}

// UnmarshalJSON implements [json.Unmarshaler]. Values outside 0-255 are
// rejected rather than truncated.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("secret is not an array of byte values: %w", err)
	}

	out := make(Secret, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("secret value %d at index %d is out of byte range", v, i)
		}
		out[i] = byte(v)
	}

	*s = out
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (s Secret) MarshalYAML() (interface{}, error) {
	values := make([]uint16, len(s))
	for i, b := range s {
		values[i] = uint16(b)
	}

	return values, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (s *Secret) UnmarshalYAML(node *yaml.Node) error {
	var values []int
	if err := node.Decode(&values); err != nil {
		return fmt.Errorf("secret is not a sequence of byte values: %w", err)
	}

	out := make(Secret, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("secret value %d at index %d is out of byte range", v, i)
		}
		out[i] = byte(v)
	}

	*s = out
	return nil
}

// TotpRecord is a single stored credential. Secret, Algo, Digits, and Step
// are required to generate codes; Issuer and Username only help identify
// the record.
type TotpRecord struct {
	// Secret is the raw key material used as the HMAC key.
	Secret Secret `json:"secret" yaml:"secret"`

	// Algo selects the hash primitive. Immutable once chosen for a record
	// unless explicitly edited.
	Algo Algo `json:"algo" yaml:"algo"`

	// Digits is the decimal width of generated codes.
	Digits uint32 `json:"digits" yaml:"digits"`

	// Step is the length of a time window in seconds.
	Step uint64 `json:"step" yaml:"step"`

	Issuer   *string `json:"issuer" yaml:"issuer"`
	Username *string `json:"username" yaml:"username"`
}

// TotpRecordDict maps a record name to its credential. It is the in-memory
// form of a whole record file.
type TotpRecordDict map[string]TotpRecord

// recordWire mirrors TotpRecord with a pointer secret so a missing
// field can be told apart from an empty one during deserialization.
type recordWire struct {
	Secret   *Secret `json:"secret" yaml:"secret"`
	Algo     Algo    `json:"algo" yaml:"algo"`
	Digits   uint32  `json:"digits" yaml:"digits"`
	Step     uint64  `json:"step" yaml:"step"`
	Issuer   *string `json:"issuer" yaml:"issuer"`
	Username *string `json:"username" yaml:"username"`
}

func defaultedWire() recordWire {
	return recordWire{
		Algo:   AlgoSHA1,
		Digits: DefaultDigits,
		Step:   DefaultStep,
	}
}

func (r *TotpRecord) fromWire(wire recordWire) error {
	if wire.Secret == nil {
		return ErrMissingSecret
	}

	r.Secret = *wire.Secret
	r.Algo = wire.Algo
	r.Digits = wire.Digits
	r.Step = wire.Step
	r.Issuer = wire.Issuer
	r.Username = wire.Username
	return nil
}

// UnmarshalJSON implements [json.Unmarshaler]. Omitted algo, digits, and
// step fields default to SHA1, 6, and 30; a missing secret is an error.
func (r *TotpRecord) UnmarshalJSON(data []byte) error {
	wire := defaultedWire()
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	return r.fromWire(wire)
}

// UnmarshalYAML implements [yaml.Unmarshaler] with the same defaulting
// rules as UnmarshalJSON.
func (r *TotpRecord) UnmarshalYAML(node *yaml.Node) error {
	wire := defaultedWire()
	if err := node.Decode(&wire); err != nil {
		return err
	}

	return r.fromWire(wire)
}
