package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrFormat", ErrFormat},
		{"ErrIntegrity", ErrIntegrity},
		{"ErrNoSkin", ErrNoSkin},
		{"ErrTransport", ErrTransport},
		{"ErrCatalogEmpty", ErrCatalogEmpty},
		{"ErrNotImplemented", ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrFormat, ErrIntegrity))
	assert.False(t, errors.Is(ErrNoSkin, ErrFormat))
	assert.False(t, errors.Is(ErrTransport, ErrNotFound))
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"format", ErrFormat, "format"},
		{"wrapped format", fmt.Errorf("reading avatar: %w", ErrFormat), "format"},
		{"integrity", fmt.Errorf("accessor 3: %w", ErrIntegrity), "integrity"},
		{"no skin", ErrNoSkin, "no_skin"},
		{"transport", fmt.Errorf("fetch: %w", ErrTransport), "transport"},
		{"catalog", ErrCatalogEmpty, "catalog_empty"},
		{"invalid input", ErrInvalidInput, "invalid_input"},
		{"not found", ErrNotFound, "not_found"},
		{"not implemented", ErrNotImplemented, "not_implemented"},
		{"other", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}
