package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"input", fmt.Errorf("city: %w", ErrInputValidation), KindInput},
		{"upstream", fmt.Errorf("fetch: %w", ErrUpstreamData), KindUpstream},
		{"load", fmt.Errorf("open: %w", ErrDataLoad), KindData},
		{"quality", fmt.Errorf("clean: %w", ErrDataQuality), KindData},
		{"direction", fmt.Errorf("bucket: %w", ErrDirectionMapping), KindDirection},
		{"model", fmt.Errorf("fit: %w", ErrModelTraining), KindModel},
		{"other", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorKind(tt.err))
		})
	}
}

func TestIsUpstream(t *testing.T) {
	assert.True(t, IsUpstream(fmt.Errorf("weatherstack: %w", ErrUpstreamData)))
	assert.False(t, IsUpstream(fmt.Errorf("fit: %w", ErrModelTraining)))
}
