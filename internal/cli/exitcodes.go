package cli

// Exit codes for catlint.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitFindings indicates the run completed but found issues
	// (diagnostics, duplicate links, or failing links).
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
