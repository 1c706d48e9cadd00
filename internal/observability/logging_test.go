package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pefman/eclipse-duel/internal/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	logger, err := observability.NewLogger("info", "json")
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	logger, err := observability.NewLogger("debug", "console")
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := observability.NewLogger("loud", "json")
	assert.Error(t, err)
}

func TestNewLogger_BadFormat(t *testing.T) {
	_, err := observability.NewLogger("info", "xml")
	assert.Error(t, err)
}
