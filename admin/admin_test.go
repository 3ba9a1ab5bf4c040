package admin

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/luci/go-render/render"

	"github.com/ottertune/svcctl/runner/fake"
	"github.com/ottertune/svcctl/services"
)

func newTasks(run *fake.Runner) *Tasks {
	return NewTasks(services.NewConfig("devbox"), run)
}

func TestResetWebsiteCommandSequence(t *testing.T) {
	run := fake.NewRunner()
	if err := newTasks(run).ResetWebsite(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := [][]string{
		{"mysql", "-u", "root", "-p", "-N", "-B", "-e", "DROP DATABASE IF EXISTS ottertune"},
		{"mysql", "-u", "root", "-p", "-N", "-B", "-e", "CREATE DATABASE ottertune"},
		{"rm", "-rf", "pipeline_results"},
		{"python", "manage.py", "migrate", "website"},
		{"python", "manage.py", "migrate"},
	}
	if !reflect.DeepEqual(run.Argvs(), want) {
		t.Fatalf("Expected: %v\nGot: %v", render.Render(want), render.Render(run.Argvs()))
	}
}

func TestResetWebsiteStopsOnFirstFailure(t *testing.T) {
	run := fake.NewRunner(fake.Response{Err: errors.New("mysql not installed")})
	if err := newTasks(run).ResetWebsite(); err == nil {
		t.Fatal("Expected the mysql failure to propagate")
	}
	if len(run.Calls()) != 1 {
		t.Fatalf("Expected no commands after the failure, got %s", render.Render(run.Argvs()))
	}
}

func TestCreateTestWebsiteLoadsFixtureAfterReset(t *testing.T) {
	run := fake.NewRunner()
	if err := newTasks(run).CreateTestWebsite(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	argvs := run.Argvs()
	last := argvs[len(argvs)-1]
	if !reflect.DeepEqual(last, []string{"python", "manage.py", "loaddata", "test_website.json"}) {
		t.Fatalf("Expected the fixture load last, got %v", render.Render(argvs))
	}
}

func TestDumpDataExcludesCatalogModels(t *testing.T) {
	run := fake.NewRunner()
	if err := newTasks(run).DumpData("dump.json"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	calls := run.Calls()
	if len(calls) != 1 || calls[0].Argv[0] != "sh" {
		t.Fatalf("Expected one shell invocation, got %s", render.Render(calls))
	}
	script := calls[0].Argv[2]
	for _, model := range []string{"DBMSCatalog", "KnobCatalog", "MetricCatalog", "PipelineResult"} {
		if !strings.Contains(script, "--exclude website."+model) {
			t.Fatalf("Expected %s to be excluded, got %q", model, script)
		}
	}
	if !strings.HasSuffix(script, "> dump.json") {
		t.Fatalf("Expected redirection to dump.json, got %q", script)
	}
}

func TestGenerateAndLoadData(t *testing.T) {
	run := fake.NewRunner()
	if err := newTasks(run).GenerateAndLoadData(5, 20, "UPLOAD123", "42"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := [][]string{
		{"python", "script/controller_simulator/data_generator.py", "5", "20", "42"},
		{"python", "script/controller_simulator/upload_data.py", "script/controller_simulator/generated_data", "UPLOAD123"},
	}
	if !reflect.DeepEqual(run.Argvs(), want) {
		t.Fatalf("Expected: %v\nGot: %v", render.Render(want), render.Render(run.Argvs()))
	}
}

func TestProcessDataRunsBothStages(t *testing.T) {
	run := fake.NewRunner()
	if err := newTasks(run).ProcessData(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	argvs := run.Argvs()
	// mkdir + shell for each of the two stages.
	if len(argvs) != 4 {
		t.Fatalf("Expected 4 commands, got %s", render.Render(argvs))
	}
	if !strings.Contains(argvs[1][2], "aggregate_results") {
		t.Fatalf("Expected aggregation first, got %q", argvs[1][2])
	}
	if !strings.Contains(argvs[3][2], "create_workload_mapping_data") {
		t.Fatalf("Expected workload mapping second, got %q", argvs[3][2])
	}
}
