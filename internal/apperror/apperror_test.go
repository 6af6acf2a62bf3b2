package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/saulo-duarte/quiz-lambda/internal/apperror"
	"github.com/stretchr/testify/assert"
)

func TestFailDefaultsAndMessage(t *testing.T) {
	err := apperror.NewValidation("Quiz title is required.")

	assert.Equal(t, "Quiz title is required.", err.Error())
	assert.Equal(t, apperror.BadRequest, err.Status)
	assert.True(t, apperror.IsValidation(err))
	assert.False(t, apperror.IsNotFound(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperror.NewValidation("bad"), http.StatusBadRequest},
		{"not found", apperror.NewNotFound("Quiz not found."), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load quiz: %w", apperror.NewNotFound("Quiz not found.")), http.StatusNotFound},
		{"plain error", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperror.HTTPStatus(tt.err))
		})
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", apperror.Fail("Quiz not found.", apperror.NotFound))

	e, ok := apperror.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Quiz not found.", e.Message)

	_, ok = apperror.As(errors.New("boom"))
	assert.False(t, ok)
}
