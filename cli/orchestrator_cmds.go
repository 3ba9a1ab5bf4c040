package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	svcerrors "github.com/ottertune/svcctl/common/errors"
)

type stopAllCmd struct{}

func (*stopAllCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "stop-all",
		Short: "Stop the celery workers, then the rabbitmq broker",
		Args:  cobra.NoArgs,
	}
}

func (*stopAllCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	c.pool.EnsureSupervisor()
	return c.orch.StopAll()
}

type startDebugServerCmd struct{}

func (*startDebugServerCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "start-debug-server [host] [port]",
		Short: "Run the development web server, starting the workers first if needed",
		Args:  cobra.MaximumNArgs(2),
	}
}

func (*startDebugServerCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	host := c.cfg.DebugHost
	port := c.cfg.DebugPort
	if len(args) > 0 {
		host = args[0]
	}
	if len(args) > 1 {
		p, err := strconv.Atoi(args[1])
		if err != nil {
			return svcerrors.NewError(
				fmt.Errorf("cannot parse %q as port", args[1]),
				svcerrors.InvalidArgumentExitCode)
		}
		port = p
	}
	c.pool.EnsureSupervisor()
	return c.orch.StartDebugServer(host, port)
}
