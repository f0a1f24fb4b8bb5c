// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"unicode/utf8"
)

// LongestValue finds the longest string in names, measured in UTF-8
// characters, starting from the given floor.
func LongestValue(names []string, starting int) int {
	longest := starting

	for _, name := range names {
		if count := utf8.RuneCountInString(name); count > longest {
			longest = count
		}
	}

	return longest
}

// PadKey pads key to the desired length in the form "key ----". Keys at
// or beyond the target length are returned unchanged.
func PadKey(key string, length int) string {
	count := utf8.RuneCountInString(key)
	if count >= length {
		return key
	}

	toAppend := length - count

	var b strings.Builder
	b.Grow(len(key) + toAppend)
	b.WriteString(key)
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("-", toAppend-1))

	return b.String()
}
