package testhelper

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

// init disables logging and terminal spinners for tests unless explicitly
// enabled
func init() {
	if !testing.Testing() {
		return
	}

	// Disable logging for all tests unless GRADEBOOK_TEST_LOG is set
	if os.Getenv("GRADEBOOK_TEST_LOG") == "" {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if os.Getenv("GRADEBOOK_TEST") == "" {
		_ = os.Setenv("GRADEBOOK_TEST", "true")
	}
}
