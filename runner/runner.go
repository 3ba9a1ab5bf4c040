// Package runner lets you run one Unix command synchronously and read back
// its stdout and exit code. It is the single boundary between svcctl and the
// operating system; everything above it is pure logic over Results.
package runner

//go:generate mockgen -source=runner.go -package=runner -destination=runner_mock.go

type Command struct {
	Argv []string

	// CaptureOutput collects the command's stdout into the Result instead of
	// streaming it to the parent's stdout. Stderr is discarded while
	// capturing (status probes should be quiet).
	CaptureOutput bool

	// WarnOnly makes a nonzero exit data instead of an error: the caller
	// inspects Result.ExitCode itself. Spawn failures are still errors.
	WarnOnly bool
}

// Result is produced once per invocation and owned by the caller.
type Result struct {
	Stdout   string
	ExitCode int
}

type Runner interface {
	// Run spawns the command and blocks until it exits.
	Run(cmd Command) (Result, error)
}
