package cli

import (
	"github.com/spf13/cobra"
)

type startWorkerPoolCmd struct{}

func (*startWorkerPoolCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "start-worker-pool [detached]",
		Short: "Start the celery workers, starting the broker first if needed",
		Args:  cobra.MaximumNArgs(1),
	}
}

func (*startWorkerPoolCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	detached, err := ParseBoolArg(args, true)
	if err != nil {
		return err
	}
	c.pool.EnsureSupervisor()
	return c.pool.Start(detached)
}

type stopWorkerPoolCmd struct{}

func (*stopWorkerPoolCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "stop-worker-pool",
		Short: "Stop the celery workers (no-op if already stopped)",
		Args:  cobra.NoArgs,
	}
}

func (*stopWorkerPoolCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	c.pool.EnsureSupervisor()
	return c.pool.Stop()
}

type statusWorkerPoolCmd struct{}

func (*statusWorkerPoolCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "status-worker-pool",
		Short: "Print the celery worker pool status",
		Args:  cobra.NoArgs,
	}
}

func (*statusWorkerPoolCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	c.pool.EnsureSupervisor()
	_, err := c.pool.Status()
	return err
}
