package cmdutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leynos/podbot/internal/api"
)

func TestExitCodeForOutcome_Success(t *testing.T) {
	assert.Equal(t, 0, ExitCodeForOutcome(api.Success()))
}

func TestExitCodeForOutcome_CommandExitWithinRange(t *testing.T) {
	assert.Equal(t, 7, ExitCodeForOutcome(api.CommandExit(7)))
}

func TestExitCodeForOutcome_ClampsAboveRange(t *testing.T) {
	assert.Equal(t, 255, ExitCodeForOutcome(api.CommandExit(1000)))
}

func TestExitCodeForOutcome_ClampsBelowRange(t *testing.T) {
	assert.Equal(t, 0, ExitCodeForOutcome(api.CommandExit(-5)))
}

func TestExitCodeForError_NilIsZero(t *testing.T) {
	assert.Equal(t, 0, ExitCodeForError(nil))
}

func TestExitCodeForError_NonNilIsConventionalOne(t *testing.T) {
	assert.Equal(t, 1, ExitCodeForError(errors.New("boom")))
}
