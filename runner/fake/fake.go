// Package fake provides a scripted runner.Runner for tests. Responses are
// consumed in call order and every Command is recorded, so tests can assert
// both what was run and in what order.
package fake

import (
	"sync"

	"github.com/ottertune/svcctl/runner"
)

type Response struct {
	Result runner.Result
	Err    error
}

// Exits scripts a sequence of responses from exit codes alone.
func Exits(codes ...int) *Runner {
	responses := make([]Response, len(codes))
	for i, code := range codes {
		responses[i] = Response{Result: runner.Result{ExitCode: code}}
	}
	return NewRunner(responses...)
}

func NewRunner(responses ...Response) *Runner {
	return &Runner{responses: responses}
}

type Runner struct {
	mu        sync.Mutex
	responses []Response
	calls     []runner.Command
}

func (r *Runner) Run(cmd runner.Command) (runner.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, cmd)
	if len(r.responses) == 0 {
		// Past the script: succeed with a zero exit.
		return runner.Result{}, nil
	}
	resp := r.responses[0]
	r.responses = r.responses[1:]
	return resp.Result, resp.Err
}

// Calls returns a copy of every Command run so far, in order.
func (r *Runner) Calls() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command{}, r.calls...)
}

// Argvs flattens the recorded calls to their argv slices.
func (r *Runner) Argvs() [][]string {
	calls := r.Calls()
	argvs := make([][]string, len(calls))
	for i, c := range calls {
		argvs[i] = c.Argv
	}
	return argvs
}
