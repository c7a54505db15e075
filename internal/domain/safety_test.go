package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

func TestContainsForbidden(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"That was awesome", true},
		{"AMAZING work", true},
		{"simply AmAzInGly done", true},
		{"Beautiful length through your spine", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ContainsForbidden(tt.in), tt.in)
	}
}
