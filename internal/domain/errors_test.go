package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageError(t *testing.T) {
	upstream := errors.New("quota exceeded")

	err := NewGenerationError("gemini", upstream)

	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "erro ao gerar o texto: quota exceeded", err.Error())

	var stageErr *StageError
	assert.True(t, errors.As(NewConfigurationError("gemini", upstream), &stageErr))
	assert.Equal(t, "gemini", stageErr.Stage)
	assert.ErrorIs(t, stageErr, ErrConfiguration)
}
