// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package otp implements the HMAC-based one-time-password computation:
// RFC 4226 dynamic truncation plus the time-derived counter that turns it
// into TOTP. Every function is a pure transform over its arguments; the
// caller supplies the clock.
package otp

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// padCode left-pads a decimal string with '0' up to digits characters.
// It never truncates: the modulo in GenerateIntegerString already bounds
// the value, so a longer string is returned as-is.
func padCode(code string, digits int) string {
	if len(code) >= digits {
		return code
	}

	var b strings.Builder
	b.Grow(digits)
	for i := 0; i < digits-len(code); i++ {
		b.WriteByte('0')
	}
	b.WriteString(code)

	return b.String()
}

// pow10 computes 10^exp on uint64 arithmetic. For exponents large enough
// to overflow, the value wraps instead of erroring; the truncated code is
// only non-degenerate for digits <= 9, and larger widths keep the
// historical wrapping behavior of existing record files.
func pow10(exp uint32) uint64 {
	result := uint64(1)
	for i := uint32(0); i < exp; i++ {
		result *= 10
	}

	return result
}

// GenerateIntegerString runs RFC 4226 dynamic truncation over
// HMAC(secret, data) and renders the result as a zero-padded decimal
// string of the requested width.
func GenerateIntegerString(algo models.Algo, secret []byte, digits uint32, data []byte) (string, error) {
	hash, err := OneOffMac(algo, secret, data)
	if err != nil {
		return "", err
	}

	offset := hash[len(hash)-1] & 0x0F
	binaryValue := uint64(hash[offset]&0x7F)<<24 |
		uint64(hash[offset+1])<<16 |
		uint64(hash[offset+2])<<8 |
		uint64(hash[offset+3])

	code := strconv.FormatUint(binaryValue%pow10(digits), 10)

	return padCode(code, int(digits)), nil
}

// Hotp generates an HMAC-based one-time password for an explicit counter
// value using SHA1, the algorithm RFC 4226 specifies.
func Hotp(secret []byte, digits uint32, counter uint64) (string, error) {
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)

	return GenerateIntegerString(models.AlgoSHA1, secret, digits, counterBytes[:])
}

// Counter derives the TOTP counter for the given wall-clock time and step.
// A clock before the UNIX epoch or a zero step cannot produce a defined
// window and both fail.
func Counter(now time.Time, step uint64) (uint64, error) {
	if step == 0 {
		return 0, ErrZeroStep
	}

	seconds := now.Unix()
	if seconds < 0 {
		return 0, ErrClockBeforeEpoch
	}

	return uint64(seconds) / step, nil
}

// SecondsRemaining reports how many seconds are left in the current time
// window. It strictly decreases within a window and resets to step at the
// boundary.
func SecondsRemaining(now time.Time, step uint64) (uint64, error) {
	if step == 0 {
		return 0, ErrZeroStep
	}

	seconds := now.Unix()
	if seconds < 0 {
		return 0, ErrClockBeforeEpoch
	}

	return step - uint64(seconds)%step, nil
}

// Totp generates the time-based code for record at the given instant.
// Calls within the same floor(now/step) window return identical codes.
func Totp(record models.TotpRecord, now time.Time) (string, error) {
	counter, err := Counter(now, record.Step)
	if err != nil {
		return "", err
	}

	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)

	return GenerateIntegerString(record.Algo, record.Secret, record.Digits, counterBytes[:])
}
