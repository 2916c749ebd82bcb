package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Devworks Bootcamp", "devworks-bootcamp"},
		{"ModernTech  Bootcamp!", "moderntech-bootcamp"},
		{"  UI/UX Design ", "ui-ux-design"},
		{"Already-Slugged", "already-slugged"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}
