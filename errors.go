package svgembed

import "errors"

var (
	// ErrUsage is returned for wrong positional arguments, malformed flags or invalid options.
	ErrUsage = errors.New("invalid usage")
	// ErrInputNotFound is returned when the source image does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
)

// Process exit statuses.
const (
	ExitOK            = 0
	ExitUsage         = 1
	ExitInputNotFound = 2
	ExitFailure       = 1
)

// ExitCode maps an error returned by the embedding pipeline to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return ExitFailure
	}
}
