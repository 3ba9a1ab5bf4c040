package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	svcerrors "github.com/ottertune/svcctl/common/errors"
)

type resetWebsiteCmd struct{}

func (*resetWebsiteCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-website",
		Short: "Destroy and recreate the website database (WARNING: destructive)",
		Args:  cobra.NoArgs,
	}
}

func (*resetWebsiteCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.ResetWebsite()
}

type createTestWebsiteCmd struct{}

func (*createTestWebsiteCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "create-test-website",
		Short: "Reset the website and load test fixtures (WARNING: destructive)",
		Args:  cobra.NoArgs,
	}
}

func (*createTestWebsiteCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.CreateTestWebsite()
}

type setupTestUserCmd struct{}

func (*setupTestUserCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "setup-test-user",
		Short: "Add a test superuser with two empty sessions",
		Args:  cobra.NoArgs,
	}
}

func (*setupTestUserCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.SetupTestUser()
}

type generateAndLoadDataCmd struct{}

func (*generateAndLoadDataCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-and-load-data <n_workload> <n_samples_per_workload> <upload_code> [random_seed]",
		Short: "Generate simulated workload data and upload it",
		Args:  cobra.RangeArgs(3, 4),
	}
}

func (*generateAndLoadDataCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	nWorkload, err := strconv.Atoi(args[0])
	if err != nil {
		return svcerrors.NewError(
			fmt.Errorf("cannot parse %q as workload count", args[0]),
			svcerrors.InvalidArgumentExitCode)
	}
	nSamples, err := strconv.Atoi(args[1])
	if err != nil {
		return svcerrors.NewError(
			fmt.Errorf("cannot parse %q as sample count", args[1]),
			svcerrors.InvalidArgumentExitCode)
	}
	seed := ""
	if len(args) > 3 {
		seed = args[3]
	}
	return c.tasks.GenerateAndLoadData(nWorkload, nSamples, args[2], seed)
}

type dumpDataCmd struct{}

func (*dumpDataCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "dumpdata <path>",
		Short: "Dump the website data to a file, excluding catalog models",
		Args:  cobra.ExactArgs(1),
	}
}

func (*dumpDataCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.DumpData(args[0])
}

type aggregateResultsCmd struct{}

func (*aggregateResultsCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate-results",
		Short: "Aggregate pipeline results",
		Args:  cobra.NoArgs,
	}
}

func (*aggregateResultsCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.AggregateResults()
}

type createWorkloadMappingDataCmd struct{}

func (*createWorkloadMappingDataCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "create-workload-mapping-data",
		Short: "Build the workload mapping data",
		Args:  cobra.NoArgs,
	}
}

func (*createWorkloadMappingDataCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.CreateWorkloadMappingData()
}

type processDataCmd struct{}

func (*processDataCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "process-data",
		Short: "Aggregate results, then build the workload mapping data",
		Args:  cobra.NoArgs,
	}
}

func (*processDataCmd) run(c *simpleCLI, cmd *cobra.Command, args []string) error {
	return c.tasks.ProcessData()
}
