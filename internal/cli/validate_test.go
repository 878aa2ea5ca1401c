package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm_Signup(t *testing.T) {
	tests := []struct {
		name    string
		form    signupForm
		wantErr string
	}{
		{"ok", signupForm{Name: "Ada", Email: "ada@example.com", Password: "secret"}, ""},
		{"missing name", signupForm{Email: "ada@example.com", Password: "secret"}, "name is a required field"},
		{"bad email", signupForm{Name: "Ada", Email: "ada", Password: "secret"}, "email must be a valid email address"},
		{"short password", signupForm{Name: "Ada", Email: "ada@example.com", Password: "abc"}, "password must be at least 6 characters in length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateForm(tt.form)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateForm_JoinsInFieldOrder(t *testing.T) {
	err := validateForm(loginForm{})
	require.Error(t, err)
	assert.Equal(t, "email is a required field; password is a required field", err.Error())
}

func TestTranslateErrors(t *testing.T) {
	err := validate.Struct(loginForm{Email: "ada@example.com"})
	assert.Equal(t, map[string]string{"password": "password is a required field"}, TranslateErrors(err))

	assert.Equal(t, map[string]string{"detail": "boom"}, TranslateErrors(errors.New("boom")))
}
