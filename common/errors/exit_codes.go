package errors

type ExitCode int

const (
	// An external service reported a status signal we do not understand.
	UnknownStatusExitCode ExitCode = 70

	// A command-line argument failed validation before any external command ran.
	InvalidArgumentExitCode = 71

	// An external command could not be spawned at all.
	CouldNotExecExitCode = 72

	GenericFailureExitCode = 1
)
