package cli

import (
	"os"
	"testing"

	// Import shared test helper for logging configuration
	_ "github.com/gradebook-cli/gradebook/internal/testhelper"
)

// TestMain runs before all tests in this package
func TestMain(m *testing.M) {
	code := m.Run()

	// Exit with the same code as the tests
	os.Exit(code)
}
