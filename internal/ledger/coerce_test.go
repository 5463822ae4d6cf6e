package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceMonto(t *testing.T) {
	casos := []struct {
		entrada string
		quiere  string
	}{
		{"1500", "1500"},
		{"12.50", "12.5"},
		{"12,50", "12.5"},
		{"  42 ", "42"},
		{"-3", "-3"},
		{"", "0"},
		{"abc", "0"},
		{"12.3.4", "0"},
	}
	for _, c := range casos {
		assert.True(t, CoerceMonto(c.entrada).Equal(d(c.quiere)), "entrada %q", c.entrada)
	}
}
