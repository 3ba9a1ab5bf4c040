package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ottertune/svcctl/common/stats"
	"github.com/ottertune/svcctl/runner"
)

// WorkerPoolController drives the celery workers as one supervised process
// group under supervisord. It depends on BrokerController: the pool is never
// started without its broker confirmed running.
type WorkerPoolController struct {
	cfg    *Config
	run    runner.Runner
	broker *BrokerController
	out    io.Writer
	stat   stats.StatsReceiver
}

func NewWorkerPoolController(cfg *Config, run runner.Runner, broker *BrokerController, out io.Writer, stat stats.StatsReceiver) *WorkerPoolController {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &WorkerPoolController{cfg: cfg, run: run, broker: broker, out: out, stat: stat.Scope("workerPool")}
}

// EnsureSupervisor launches supervisord if it is not already up. Best
// effort: supervisord exits nonzero when another instance holds the config,
// which is the normal case.
func (c *WorkerPoolController) EnsureSupervisor() {
	_, err := c.run.Run(runner.Command{
		Argv:          c.cfg.supervisordArgv(),
		CaptureOutput: true,
		WarnOnly:      true,
	})
	if err != nil {
		log.WithFields(log.Fields{"error": err}).Debug("Could not launch supervisord")
	}
}

// Status asks supervisorctl for the pool's state and prints the canonical
// status line. The state token is the second whitespace-separated field of
// the output, e.g. "celeryd RUNNING pid 12345, uptime 0:01:02".
func (c *WorkerPoolController) Status() (StatusCode, error) {
	res, err := c.run.Run(runner.Command{
		Argv:          c.cfg.supervisorctlArgv("status"),
		CaptureOutput: true,
		WarnOnly:      true,
	})
	if err != nil {
		return UNKNOWN, errors.Wrap(err, "could not query celery status")
	}
	fields := strings.Fields(res.Stdout)
	if len(fields) < 2 {
		return UNKNOWN, &UnknownStatusError{Service: WorkerPoolName, Value: strings.TrimSpace(res.Stdout)}
	}
	status, err := WorkerStateFromToken(fields[1])
	if err != nil {
		return UNKNOWN, err
	}
	fmt.Fprintf(c.out, "%s status: %s\n", WorkerPoolName, status)
	return status, nil
}

// Start brings the pool up. The broker is re-queried first, not assumed: if
// it reports STOPPED it is started before the pool. A detached start hands
// the pool to supervisord (which respawns it per its own policy); a
// foreground start runs a worker directly and blocks for its lifetime.
//
// Like BrokerController.Start, this does not short-circuit when the pool is
// already RUNNING; supervisord treats a redundant start as its own concern.
func (c *WorkerPoolController) Start(detached bool) error {
	brokerStatus, err := c.broker.Status()
	if err != nil {
		return err
	}
	if brokerStatus == STOPPED {
		if err := c.broker.Start(true); err != nil {
			return err
		}
	}

	c.stat.Counter("starts").Inc(1)
	if !detached {
		_, err := c.run.Run(runner.Command{Argv: c.cfg.workerForegroundArgv()})
		return errors.Wrap(err, "could not run celery worker")
	}
	res, err := c.run.Run(runner.Command{Argv: c.cfg.supervisorctlArgv("start"), WarnOnly: true})
	if err != nil {
		return errors.Wrap(err, "could not start celery")
	}
	log.WithFields(log.Fields{"exitCode": res.ExitCode}).Info("Issued celery start")
	return nil
}

// Stop issues the supervisord stop action. Idempotent: stopping a stopped or
// unmanaged process is not an error at the supervisorctl level, and the exit
// code is logged rather than interpreted.
func (c *WorkerPoolController) Stop() error {
	c.stat.Counter("stops").Inc(1)
	res, err := c.run.Run(runner.Command{Argv: c.cfg.supervisorctlArgv("stop"), WarnOnly: true})
	if err != nil {
		return errors.Wrap(err, "could not stop celery")
	}
	log.WithFields(log.Fields{"exitCode": res.ExitCode}).Info("Issued celery stop")
	return nil
}
