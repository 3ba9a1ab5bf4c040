package services

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/ottertune/svcctl/common/stats"
	"github.com/ottertune/svcctl/runner"
)

// BrokerController drives the rabbitmq daemon through rabbitmqctl and
// rabbitmq-server. It holds no state of its own; the daemon's process is the
// only state there is.
type BrokerController struct {
	cfg  *Config
	run  runner.Runner
	out  io.Writer
	stat stats.StatsReceiver
}

func NewBrokerController(cfg *Config, run runner.Runner, out io.Writer, stat stats.StatsReceiver) *BrokerController {
	if stat == nil {
		stat = stats.NilStatsReceiver()
	}
	return &BrokerController{cfg: cfg, run: run, out: out, stat: stat.Scope("broker")}
}

// Status queries the broker and prints the canonical status line. Exit code
// 0 means RUNNING, 2 and 69 mean STOPPED; anything else is fatal.
func (c *BrokerController) Status() (StatusCode, error) {
	res, err := c.run.Run(runner.Command{
		Argv:          c.cfg.brokerctlArgv("status"),
		CaptureOutput: true,
		WarnOnly:      true,
	})
	if err != nil {
		return UNKNOWN, errors.Wrap(err, "could not query rabbitmq status")
	}
	status, err := BrokerStatusFromExitCode(res.ExitCode)
	if err != nil {
		return UNKNOWN, err
	}
	fmt.Fprintf(c.out, "%s status: %s\n", BrokerName, status)
	return status, nil
}

// Start launches the broker daemon. A detached start returns as soon as the
// daemon forks; a foreground start blocks for the daemon's whole lifetime
// and is only useful interactively.
//
// Start does not check whether the broker is already running. Callers that
// want an idempotent start query Status first, the way WorkerPoolController
// does.
func (c *BrokerController) Start(detached bool) error {
	c.stat.Counter("starts").Inc(1)
	_, err := c.run.Run(runner.Command{Argv: c.cfg.brokerServerArgv(detached)})
	return errors.Wrap(err, "could not start rabbitmq")
}

// Stop is idempotent by construction: rabbitmqctl's "already stopped" exit
// codes are absorbed rather than surfaced.
func (c *BrokerController) Stop() error {
	c.stat.Counter("stops").Inc(1)
	_, err := c.run.Run(runner.Command{Argv: c.cfg.brokerctlArgv("stop"), WarnOnly: true})
	return errors.Wrap(err, "could not stop rabbitmq")
}
