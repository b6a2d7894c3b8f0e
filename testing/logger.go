package testing

import (
	"testing"

	"github.com/arloliu/rota/internal/logger"
	"github.com/arloliu/rota/types"
)

// NewTestLogger creates a logger that writes to the test log.
// This is useful for seeing Service log output during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
