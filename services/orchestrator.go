package services

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ottertune/svcctl/runner"
)

// Orchestrator sequences composite operations across both controllers.
type Orchestrator struct {
	cfg    *Config
	run    runner.Runner
	broker *BrokerController
	pool   *WorkerPoolController
}

func NewOrchestrator(cfg *Config, run runner.Runner, broker *BrokerController, pool *WorkerPoolController) *Orchestrator {
	return &Orchestrator{cfg: cfg, run: run, broker: broker, pool: pool}
}

// StopAll stops the worker pool, then the broker, always in that order: the
// dependent service goes down first so it does not reconnect against a
// broker that is disappearing mid-shutdown. Best effort: a failure stopping
// the pool is logged and the broker is stopped anyway.
func (o *Orchestrator) StopAll() error {
	if err := o.pool.Stop(); err != nil {
		log.WithFields(log.Fields{"error": err}).Error("Error stopping celery; stopping rabbitmq anyway")
	}
	return o.broker.Stop()
}

// StartDebugServer makes sure the worker pool is running (starting it, and
// transitively its broker, if needed), then runs the development server in
// the foreground until it exits.
func (o *Orchestrator) StartDebugServer(host string, port int) error {
	status, err := o.pool.Status()
	if err != nil {
		return err
	}
	if status == STOPPED {
		if err := o.pool.Start(true); err != nil {
			return err
		}
	}
	_, err = o.run.Run(runner.Command{Argv: o.cfg.debugServerArgv(host, port)})
	return errors.Wrap(err, "debug server failed")
}
