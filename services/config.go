package services

import "fmt"

// Config collects every process-wide setting the controllers and admin tasks
// need. It is built once at startup from the hostname and flags, then passed
// by reference into each constructor; nothing here is mutated afterwards.
type Config struct {
	// CommandPrefix is prepended to supervisor commands. On the production
	// host the worker pool runs as the celery user.
	CommandPrefix []string

	// SupervisorConf is the path passed to supervisord/supervisorctl via -c.
	SupervisorConf string

	// WorkerProcess is the supervisord program name for the worker pool.
	WorkerProcess string

	DebugHost string
	DebugPort int

	// PipelineDir holds aggregated pipeline results for the admin tasks.
	PipelineDir string

	// Database settings used only by the website reset tasks.
	DBUser     string
	DBPassword string
	DBName     string
}

// ProdHostname is the machine where the workers run under the celery user.
const ProdHostname = "ottertune"

func NewConfig(hostname string) *Config {
	cfg := &Config{
		SupervisorConf: "config/supervisord.conf",
		WorkerProcess:  "celeryd",
		DebugHost:      "0.0.0.0",
		DebugPort:      8000,
		PipelineDir:    "pipeline_results",
		DBUser:         "root",
		DBPassword:     "",
		DBName:         "ottertune",
	}
	if hostname == ProdHostname {
		cfg.CommandPrefix = []string{"sudo", "-u", "celery"}
		cfg.SupervisorConf = "config/prod_supervisord.conf"
	}
	return cfg
}

func (c *Config) prefixed(argv ...string) []string {
	return append(append([]string{}, c.CommandPrefix...), argv...)
}

func (c *Config) brokerctlArgv(action string) []string {
	return []string{"sudo", "rabbitmqctl", action}
}

func (c *Config) brokerServerArgv(detached bool) []string {
	argv := []string{"sudo", "rabbitmq-server"}
	if detached {
		argv = append(argv, "-detached")
	}
	return argv
}

func (c *Config) supervisordArgv() []string {
	return c.prefixed("supervisord", "-c", c.SupervisorConf)
}

func (c *Config) supervisorctlArgv(action string) []string {
	return c.prefixed("supervisorctl", "-c", c.SupervisorConf, action, c.WorkerProcess)
}

func (c *Config) workerForegroundArgv() []string {
	return c.prefixed("python", "manage.py", "celery", "worker", "-l", "info")
}

func (c *Config) debugServerArgv(host string, port int) []string {
	return []string{"python", "manage.py", "runserver", fmt.Sprintf("%s:%d", host, port)}
}
