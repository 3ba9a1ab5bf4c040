// Package cli wires the controllers into the svcctl command-line surface.
package cli

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ottertune/svcctl/admin"
	"github.com/ottertune/svcctl/common/stats"
	"github.com/ottertune/svcctl/runner"
	"github.com/ottertune/svcctl/services"
)

// CLI handling interface
type CLI interface {
	Exec() error
}

type simpleCLI struct {
	rootCmd *cobra.Command

	logLevel string

	cfg    *services.Config
	broker *services.BrokerController
	pool   *services.WorkerPoolController
	orch   *services.Orchestrator
	tasks  *admin.Tasks
}

func New(cfg *services.Config, run runner.Runner, out io.Writer, stat stats.StatsReceiver) CLI {
	c := &simpleCLI{cfg: cfg}
	c.broker = services.NewBrokerController(cfg, run, out, stat)
	c.pool = services.NewWorkerPoolController(cfg, run, c.broker, out, stat)
	c.orch = services.NewOrchestrator(cfg, run, c.broker, c.pool)
	c.tasks = admin.NewTasks(cfg, run)

	c.rootCmd = &cobra.Command{
		Use:               "svcctl",
		Short:             "svcctl controls the website's background services",
		Run:               func(*cobra.Command, []string) {},
		PersistentPreRunE: c.setLogLevel,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	c.rootCmd.PersistentFlags().StringVar(&c.logLevel, "log_level", "info",
		"Log everything at this level and above (error|info|debug)")

	c.addCmd(&startBrokerCmd{})
	c.addCmd(&stopBrokerCmd{})
	c.addCmd(&statusBrokerCmd{})
	c.addCmd(&startWorkerPoolCmd{})
	c.addCmd(&stopWorkerPoolCmd{})
	c.addCmd(&statusWorkerPoolCmd{})
	c.addCmd(&stopAllCmd{})
	c.addCmd(&startDebugServerCmd{})

	c.addCmd(&resetWebsiteCmd{})
	c.addCmd(&createTestWebsiteCmd{})
	c.addCmd(&setupTestUserCmd{})
	c.addCmd(&generateAndLoadDataCmd{})
	c.addCmd(&dumpDataCmd{})
	c.addCmd(&aggregateResultsCmd{})
	c.addCmd(&createWorkloadMappingDataCmd{})
	c.addCmd(&processDataCmd{})

	return c
}

func (c *simpleCLI) Exec() error {
	return c.rootCmd.Execute()
}

func (c *simpleCLI) setLogLevel(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func (c *simpleCLI) addCmd(cmd command) {
	cobraCmd := cmd.registerFlags()
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		return cmd.run(c, innerCmd, args)
	}
	c.rootCmd.AddCommand(cobraCmd)
}

type command interface {
	registerFlags() *cobra.Command
	run(c *simpleCLI, cmd *cobra.Command, args []string) error
}
