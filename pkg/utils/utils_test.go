package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifySectionID(t *testing.T) {
	tests := []struct {
		heading string
		want    string
	}{
		{"## Who I Am", "who-i-am"},
		{"## Hook Formulas", "hook-formulas"},
		{"## The Desire Framework", "the-desire-framework"},
		{"## The 3-Part Hook Formula", "the-3-part-hook-formula"},
		{"# Title  with   gaps", "title-with-gaps"},
		{"## Trailing? ", "trailing"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlugifySectionID(tt.heading), "heading %q", tt.heading)
	}
}
