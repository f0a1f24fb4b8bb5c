// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Algo selects the hash primitive used for the HMAC step of code
// generation. The set is closed: records only ever carry one of the three
// constants below, and serialization uses the literal uppercase names.
//
// Note that AlgoSHA256 and AlgoSHA512 map to SHA3-256 and SHA3-512, not to
// the SHA-2 family. Existing encrypted stores were produced with that
// mapping, so it is kept for compatibility even though most OTP tooling
// expects SHA-2 under these labels.
type Algo int

const (
	AlgoSHA1 Algo = iota
	AlgoSHA256
	AlgoSHA512
)

// ErrUnknownAlgo is returned when a string does not name one of the three
// supported algorithms. There is deliberately no default fallback.
type ErrUnknownAlgo struct {
	Value string
}

func (e *ErrUnknownAlgo) Error() string {
	return fmt.Sprintf("unknown algorithm name: %q", e.Value)
}

// ParseAlgo converts the serialized uppercase name back into an Algo.
func ParseAlgo(value string) (Algo, error) {
	switch value {
	case "SHA1":
		return AlgoSHA1, nil
	case "SHA256":
		return AlgoSHA256, nil
	case "SHA512":
		return AlgoSHA512, nil
	default:
		return 0, &ErrUnknownAlgo{Value: value}
	}
}

// String returns the serialized name of the Algo.
func (a Algo) String() string {
	switch a {
	case AlgoSHA1:
		return "SHA1"
	case AlgoSHA256:
		return "SHA256"
	case AlgoSHA512:
		return "SHA512"
	default:
		return fmt.Sprintf("Algo(%d)", int(a))
	}
}

// MarshalText implements [encoding.TextMarshaler] so the enum round-trips
// through both JSON and YAML as its literal name.
func (a Algo) MarshalText() ([]byte, error) {
	switch a {
	case AlgoSHA1, AlgoSHA256, AlgoSHA512:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("cannot serialize out-of-range algo value %d", int(a))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Algo) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgo(string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// MarshalYAML implements [yaml.Marshaler]. gopkg.in/yaml.v3 does not honor
// encoding.TextMarshaler, so the YAML hooks are spelled out separately.
func (a Algo) MarshalYAML() (interface{}, error) {
	text, err := a.MarshalText()
	if err != nil {
		return nil, err
	}

	return string(text), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (a *Algo) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	return a.UnmarshalText([]byte(value))
}
