package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestValue(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		starting int
		want     int
	}{
		{name: "empty uses floor", names: nil, starting: 10, want: 10},
		{name: "longest wins", names: []string{"a", "abcdef", "abc"}, starting: 0, want: 6},
		{name: "floor wins", names: []string{"ab"}, starting: 5, want: 5},
		{name: "multibyte counted as runes", names: []string{"héllo"}, starting: 0, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestValue(tt.names, tt.starting))
		})
	}
}

func TestPadKey(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		length int
		want   string
	}{
		{name: "pads with dashes", key: "abc", length: 8, want: "abc ----"},
		{name: "single pad is a space", key: "abc", length: 4, want: "abc "},
		{name: "exact length untouched", key: "abcd", length: 4, want: "abcd"},
		{name: "longer untouched", key: "abcdef", length: 4, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadKey(tt.key, tt.length))
		})
	}
}
