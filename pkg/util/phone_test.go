package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"eleven digits", "11999998888", "(11) 99999-8888"},
		{"eleven digits with noise", "(11) 99999-8888", "(11) 99999-8888"},
		{"thirteen digits with country code", "5511999998888", "+55 (11) 99999-8888"},
		{"thirteen digits with plus", "+55 11 99999-8888", "+55 (11) 99999-8888"},
		{"unexpected length passes through", "99998888", "99998888"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhone(tt.input))
		})
	}
}
