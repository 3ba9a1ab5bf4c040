// Package admin holds the shell-delegation tasks around the website:
// database reset, fixture loading, data generation, report aggregation.
// There is no decision logic here; every task is a straight passthrough to
// external commands, and any nonzero exit is fatal.
package admin

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ottertune/svcctl/runner"
	"github.com/ottertune/svcctl/services"
)

// Models excluded from data dumps; they are catalog data shipped with the
// code, not user state.
var dumpExcludedModels = []string{"DBMSCatalog", "KnobCatalog", "MetricCatalog", "PipelineResult"}

type Tasks struct {
	cfg *services.Config
	run runner.Runner
}

func NewTasks(cfg *services.Config, run runner.Runner) *Tasks {
	return &Tasks{cfg: cfg, run: run}
}

func (t *Tasks) exec(argv ...string) error {
	_, err := t.run.Run(runner.Command{Argv: argv})
	return err
}

// sh runs a script through the shell, for the handful of tasks that need
// pipes or redirection.
func (t *Tasks) sh(script string) error {
	return t.exec("sh", "-c", script)
}

// ResetWebsite destroys the existing website database and recreates it with
// the required initial data (e.g. the knob catalog) loaded by the migrations.
func (t *Tasks) ResetWebsite() error {
	log.Warn("Resetting the website database; existing data will be destroyed")

	drop := fmt.Sprintf("DROP DATABASE IF EXISTS %s", t.cfg.DBName)
	if err := t.exec("mysql", "-u", t.cfg.DBUser, "-p"+t.cfg.DBPassword, "-N", "-B", "-e", drop); err != nil {
		return err
	}
	create := fmt.Sprintf("CREATE DATABASE %s", t.cfg.DBName)
	if err := t.exec("mysql", "-u", t.cfg.DBUser, "-p"+t.cfg.DBPassword, "-N", "-B", "-e", create); err != nil {
		return err
	}

	if err := t.exec("rm", "-rf", t.cfg.PipelineDir); err != nil {
		return err
	}

	if err := t.exec("python", "manage.py", "migrate", "website"); err != nil {
		return err
	}
	return t.exec("python", "manage.py", "migrate")
}

// CreateTestWebsite resets the website and loads a test user plus two test
// sessions, one of them with knob/metric data preloaded.
func (t *Tasks) CreateTestWebsite() error {
	if err := t.ResetWebsite(); err != nil {
		return err
	}
	return t.exec("python", "manage.py", "loaddata", "test_website.json")
}

// SetupTestUser adds a test superuser with two empty sessions to an existing
// website.
func (t *Tasks) SetupTestUser() error {
	script := "echo \"from django.contrib.auth.models import User; " +
		"User.objects.filter(email='user@email.com').delete(); " +
		"User.objects.create_superuser('user', 'user@email.com', 'abcd123')\" " +
		"| python manage.py shell"
	if err := t.sh(script); err != nil {
		return err
	}
	return t.exec("python", "manage.py", "loaddata", "test_user_sessions.json")
}

// GenerateAndLoadData invokes the controller simulator to generate workload
// samples and uploads them under the given upload code.
func (t *Tasks) GenerateAndLoadData(nWorkload, nSamplesPerWorkload int, uploadCode, randomSeed string) error {
	err := t.exec("python", "script/controller_simulator/data_generator.py",
		fmt.Sprintf("%d", nWorkload), fmt.Sprintf("%d", nSamplesPerWorkload), randomSeed)
	if err != nil {
		return err
	}
	return t.exec("python", "script/controller_simulator/upload_data.py",
		"script/controller_simulator/generated_data", uploadCode)
}

// DumpData dumps the website data to the given path, excluding catalog
// models.
func (t *Tasks) DumpData(dumpPath string) error {
	script := "python manage.py dumpdata"
	for _, model := range dumpExcludedModels {
		script += " --exclude website." + model
	}
	script += " > " + dumpPath
	return t.sh(script)
}

// AggregateResults runs the result aggregation task in a django shell.
func (t *Tasks) AggregateResults() error {
	if err := t.exec("mkdir", "-p", t.cfg.PipelineDir); err != nil {
		return err
	}
	return t.djangoShell("from website.tasks import aggregate_results; aggregate_results()")
}

// CreateWorkloadMappingData runs the workload mapping task in a django shell.
func (t *Tasks) CreateWorkloadMappingData() error {
	if err := t.exec("mkdir", "-p", t.cfg.PipelineDir); err != nil {
		return err
	}
	return t.djangoShell("from website.tasks import create_workload_mapping_data; create_workload_mapping_data()")
}

// ProcessData aggregates results, then builds the workload mapping data.
func (t *Tasks) ProcessData() error {
	if err := t.AggregateResults(); err != nil {
		return err
	}
	return t.CreateWorkloadMappingData()
}

func (t *Tasks) djangoShell(code string) error {
	script := fmt.Sprintf(
		"export PYTHONPATH=$(pwd):$PYTHONPATH; django-admin shell --settings=website.settings -c \"%s\"", code)
	return t.sh(script)
}
