package os

import (
	"bytes"
	"io/ioutil"
	"os"
	"os/exec"
	"syscall"

	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	svcerrors "github.com/ottertune/svcctl/common/errors"
	"github.com/ottertune/svcctl/common/stats"
	"github.com/ottertune/svcctl/runner"
)

// Implements runner.Runner over os/exec. Strictly synchronous: Run spawns
// one process and waits for it. No timeouts or cancellation; a foreground
// command runs until it exits or the whole program is signaled.
type osRunner struct {
	stat stats.StatsReceiver
}

func NewRunner(stat stats.StatsReceiver) runner.Runner {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &osRunner{stat: stat}
}

func (r *osRunner) Run(cmd runner.Command) (runner.Result, error) {
	if len(cmd.Argv) == 0 {
		return runner.Result{}, errors.New("no command specified")
	}
	tag := invocationTag()
	log.WithFields(log.Fields{
		"argv":     cmd.Argv,
		"warnOnly": cmd.WarnOnly,
		"tag":      tag,
	}).Info("Running command")
	r.stat.Counter("commands").Inc(1)

	execCmd := exec.Command(cmd.Argv[0], cmd.Argv[1:]...)
	var stdout bytes.Buffer
	if cmd.CaptureOutput {
		execCmd.Stdout = &stdout
		execCmd.Stderr = ioutil.Discard
	} else {
		execCmd.Stdout, execCmd.Stderr = os.Stdout, os.Stderr
	}

	err := execCmd.Run()
	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			r.stat.Counter("spawnFailures").Inc(1)
			wrapped := errors.Wrapf(err, "could not exec %v", cmd.Argv)
			return runner.Result{}, svcerrors.NewError(wrapped, svcerrors.CouldNotExecExitCode)
		}
		exitCode = exitErr.Sys().(syscall.WaitStatus).ExitStatus()
	}

	res := runner.Result{Stdout: stdout.String(), ExitCode: exitCode}
	log.WithFields(log.Fields{
		"exitCode": exitCode,
		"tag":      tag,
	}).Debug("Command finished")

	if exitCode != 0 && !cmd.WarnOnly {
		r.stat.Counter("failures").Inc(1)
		return res, errors.Errorf("command %v failed with exit code %d", cmd.Argv, exitCode)
	}
	return res, nil
}

// Every invocation gets a uuid so its start and finish log lines correlate.
func invocationTag() string {
	id, err := uuid.NewV4()
	for err != nil {
		id, err = uuid.NewV4()
	}
	return id.String()
}
