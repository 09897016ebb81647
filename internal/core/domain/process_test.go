package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestProcessFailure_SurvivesWrapping(t *testing.T) {
	err := zerr.With(zerr.Wrap(&domain.ProcessFailure{ExitCode: 2, Output: "boom\n"}, "build failed"), "stage", "build")

	var failure *domain.ProcessFailure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, 2, failure.ExitCode)
	assert.Equal(t, "boom\n", failure.Output)
	assert.Equal(t, "process exited with status 2", failure.Error())
}
