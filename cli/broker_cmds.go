package cli

import (
	"github.com/spf13/cobra"
)

type startBrokerCmd struct{}

func (*startBrokerCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "start-broker [detached]",
		Short: "Start the rabbitmq broker (detached by default)",
		Args:  cobra.MaximumNArgs(1),
	}
}

func (*startBrokerCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	detached, err := ParseBoolArg(args, true)
	if err != nil {
		return err
	}
	return c.broker.Start(detached)
}

type stopBrokerCmd struct{}

func (*stopBrokerCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "stop-broker",
		Short: "Stop the rabbitmq broker (no-op if already stopped)",
		Args:  cobra.NoArgs,
	}
}

func (*stopBrokerCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.broker.Stop()
}

type statusBrokerCmd struct{}

func (*statusBrokerCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "status-broker",
		Short: "Print the rabbitmq broker status",
		Args:  cobra.NoArgs,
	}
}

func (*statusBrokerCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	_, err := c.broker.Status()
	return err
}
