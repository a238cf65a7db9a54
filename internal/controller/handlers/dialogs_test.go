package handlers

import (
	"fmt"
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/api"
	"github.com/Freeeeeet/outpass_staff_bot/internal/outpass"
	"github.com/Freeeeeet/outpass_staff_bot/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestIsInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "backend validation", err: fmt.Errorf("add student: %w", &api.ValidationError{Status: 400, Message: "bad email"}), want: true},
		{name: "local field", err: &service.InvalidInputError{Field: "email", Reason: "must be an email"}, want: true},
		{name: "blank remarks", err: outpass.ErrRemarksRequired, want: true},
		{name: "not loaded", err: outpass.ErrRequestNotLoaded, want: false},
		{name: "server error", err: &api.StatusError{Status: 500, Message: "boom"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isInputError(tt.err))
		})
	}
}
