package cli

import (
	"errors"
	"os"

	"github.com/thenoetrevino/tablero/internal/seed"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: terminal errors, unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: bad flags or a seed source whose format cannot be told.
	ExitUsage = 2

	// ExitNotFound indicates a seed file or object does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates the seed could not be parsed.
	ExitDataErr = 4
)

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, seed.ErrUnknownSource):
		return ExitUsage
	case errors.Is(err, os.ErrNotExist), errors.Is(err, seed.ErrSeedNotFound):
		return ExitNotFound
	case errors.Is(err, seed.ErrMalformed):
		return ExitDataErr
	}
	return ExitError
}
