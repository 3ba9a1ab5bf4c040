package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ottertune/svcctl/cli"
	svcerrors "github.com/ottertune/svcctl/common/errors"
	"github.com/ottertune/svcctl/common/log/hooks"
	"github.com/ottertune/svcctl/common/stats"
	osrunner "github.com/ottertune/svcctl/runner/os"
	"github.com/ottertune/svcctl/services"
)

// CLI binary to control the website's background services.
//	Supported commands: (see "-h" for all options)
//		start-broker / stop-broker / status-broker
//		start-worker-pool / stop-worker-pool / status-worker-pool
//		stop-all
//		start-debug-server [host] [port]
//		admin tasks: reset-website, create-test-website, setup-test-user,
//		generate-and-load-data, dumpdata, aggregate-results,
//		create-workload-mapping-data, process-data
//	Global flags:
//		--log_level [<error|info|debug> level and above should be logged]

func main() {
	log.AddHook(hooks.NewContextHook())

	hostname, err := os.Hostname()
	if err != nil {
		log.Fatal("Could not determine hostname: ", err)
	}
	cfg := services.NewConfig(hostname)

	stat := stats.DefaultStatsReceiver()
	run := osrunner.NewRunner(stat.Scope("runner"))

	c := cli.New(cfg, run, os.Stdout, stat)
	if err := c.Exec(); err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}
}

// exitCode picks the process exit code for a fatal error. Unknown status
// signals get their own code so wrapping scripts can tell "I do not
// understand this environment" from an ordinary command failure.
func exitCode(err error) int {
	if _, ok := errors.Cause(err).(*services.UnknownStatusError); ok {
		return int(svcerrors.UnknownStatusExitCode)
	}
	return int(svcerrors.CodeOf(err, svcerrors.GenericFailureExitCode))
}
