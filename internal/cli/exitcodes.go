package cli

import (
	"errors"

	"github.com/yaklabco/assistkit/internal/configloader"
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/fsutil"
	"github.com/yaklabco/assistkit/pkg/langdetect"
)

// Exit codes for assistkit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitNoAssists indicates that no assist was available at the selection,
	// or that the requested assist was not offered there.
	ExitNoAssists = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrNoAssists is returned when nothing is offered at the selection.
	ErrNoAssists = errors.New("no assists available")

	// ErrAssistNotOffered is returned by apply when the requested assist
	// does not apply at the selection.
	ErrAssistNotOffered = errors.New("assist not offered at selection")

	// ErrUsage marks invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks configuration loading failures.
	ErrConfig = errors.New("failed to load configuration")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoAssists), errors.Is(err, ErrAssistNotOffered):
		return ExitNoAssists
	case errors.Is(err, ErrUsage),
		errors.Is(err, assist.ErrInvalidSelection),
		errors.Is(err, langdetect.ErrUnsupportedLanguage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrModified),
		errors.Is(err, configloader.ErrConfigExists):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsSignal reports whether err only carries an exit status and should not
// be logged.
func IsSignal(err error) bool {
	return errors.Is(err, ErrNoAssists)
}
