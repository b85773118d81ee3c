package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomID(t *testing.T) {
	seen := map[string]bool{}

	for i := 0; i < 100; i++ {
		id := NewRandomID()

		assert.True(t, IsValidID(id))
		assert.False(t, seen[id])

		seen[id] = true
	}
}

func TestIsValidID(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect bool
	}{
		{Name: "Empty", Given: "", Expect: false},
		{Name: "TooShort", Given: "abc123", Expect: false},
		{Name: "NotHex", Given: "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz", Expect: false},
		{Name: "Valid", Given: "0f0e0d0c0b0a00010203040506070809", Expect: true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, IsValidID(c.Given))
		})
	}
}
