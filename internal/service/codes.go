// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates code generation over stored records. It is
// the seam between the pure otp package and the callers that own a clock.
package service

import (
	"sort"
	"time"

	"github.com/MKhiriev/go-totp-keeper/internal/otp"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// Clock supplies the current wall-clock time. Injected so tests can pin
// the window.
type Clock func() time.Time

// Code is one generated TOTP code together with how long it stays valid.
type Code struct {
	// Value is the zero-padded decimal code.
	Value string

	// SecondsLeft is the remaining lifetime of Value within its window.
	// It strictly decreases until the window boundary, then resets to the
	// record's step.
	SecondsLeft uint64
}

// NamedCode pairs a generated code with the record name it belongs to.
type NamedCode struct {
	Name string
	Code Code
}

// CodeService generates live codes from records.
type CodeService struct {
	clock Clock
}

// NewCodeService constructs a [CodeService]. A nil clock defaults to
// [time.Now].
func NewCodeService(clock Clock) *CodeService {
	if clock == nil {
		clock = time.Now
	}

	return &CodeService{clock: clock}
}

// Generate computes the current code for a single record. Repeated calls
// within the same time window return the identical code.
func (s *CodeService) Generate(record models.TotpRecord) (Code, error) {
	now := s.clock()

	value, err := otp.Totp(record, now)
	if err != nil {
		return Code{}, err
	}

	left, err := otp.SecondsRemaining(now, record.Step)
	if err != nil {
		return Code{}, err
	}

	return Code{Value: value, SecondsLeft: left}, nil
}

// GenerateAll computes codes for every record in the dict, ordered by
// record name for stable output.
func (s *CodeService) GenerateAll(records models.TotpRecordDict) ([]NamedCode, error) {
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]NamedCode, 0, len(names))
	for _, name := range names {
		code, err := s.Generate(records[name])
		if err != nil {
			return nil, err
		}

		out = append(out, NamedCode{Name: name, Code: code})
	}

	return out, nil
}
