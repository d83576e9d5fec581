package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "111111111", Clean("11.111.111-1"))
	assert.Equal(t, "12345678K", Clean("12.345.678-k"))
	assert.Equal(t, "12345678K", Clean(" 12345678K "))
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"11.111.111-1": true,
		"11111111-1":   true,
		"12.345.678-5": true,
		"12.345.678-9": false,
		"1-9":          true,
		"":             false,
		"K":            false,
		"ABCDEF-1":     false,
	}
	for raw, want := range cases {
		assert.Equal(t, want, Valid(raw), "rut %q", raw)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "11.111.111-1", Format("111111111"))
	assert.Equal(t, "1-9", Format("19"))
}
