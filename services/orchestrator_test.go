package services

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/luci/go-render/render"

	"github.com/ottertune/svcctl/runner"
	"github.com/ottertune/svcctl/runner/fake"
)

func newOrchestrator(run runner.Runner, out *bytes.Buffer) *Orchestrator {
	cfg := NewConfig("devbox")
	broker := NewBrokerController(cfg, run, out, nil)
	pool := NewWorkerPoolController(cfg, run, broker, out, nil)
	return NewOrchestrator(cfg, run, broker, pool)
}

func TestStopAllStopsPoolBeforeBroker(t *testing.T) {
	run := fake.Exits(0, 0)
	var out bytes.Buffer
	if err := newOrchestrator(run, &out).StopAll(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := [][]string{
		{"supervisorctl", "-c", "config/supervisord.conf", "stop", "celeryd"},
		{"sudo", "rabbitmqctl", "stop"},
	}
	if !reflect.DeepEqual(run.Argvs(), want) {
		t.Fatalf("Expected: %v\nGot: %v", render.Render(want), render.Render(run.Argvs()))
	}
}

// Best effort: even when the pool stop fails outright, the broker stop is
// still attempted.
func TestStopAllDoesNotShortCircuit(t *testing.T) {
	run := fake.NewRunner(
		fake.Response{Err: errors.New("supervisorctl could not be spawned")},
		fake.Response{},
	)
	var out bytes.Buffer
	if err := newOrchestrator(run, &out).StopAll(); err != nil {
		t.Fatalf("Expected broker stop to succeed, got %v", err)
	}
	argvs := run.Argvs()
	if len(argvs) != 2 {
		t.Fatalf("Expected broker stop to be attempted after pool stop failed, got %s", render.Render(argvs))
	}
	if !reflect.DeepEqual(argvs[1], []string{"sudo", "rabbitmqctl", "stop"}) {
		t.Fatalf("Expected broker stop second, got %v", render.Render(argvs[1]))
	}
}

func TestStartDebugServerStartsStoppedPoolFirst(t *testing.T) {
	run := fake.NewRunner(
		fake.Response{Result: runner.Result{Stdout: "celeryd STOPPED Not started"}}, // pool status
		fake.Response{}, // broker status: exit 0, RUNNING
		fake.Response{}, // supervisorctl start
		fake.Response{}, // runserver
	)
	var out bytes.Buffer
	if err := newOrchestrator(run, &out).StartDebugServer("0.0.0.0", 8000); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := [][]string{
		{"supervisorctl", "-c", "config/supervisord.conf", "status", "celeryd"},
		{"sudo", "rabbitmqctl", "status"},
		{"supervisorctl", "-c", "config/supervisord.conf", "start", "celeryd"},
		{"python", "manage.py", "runserver", "0.0.0.0:8000"},
	}
	if !reflect.DeepEqual(run.Argvs(), want) {
		t.Fatalf("Expected: %v\nGot: %v", render.Render(want), render.Render(run.Argvs()))
	}
}

func TestStartDebugServerSkipsStartWhenPoolRunning(t *testing.T) {
	run := fake.NewRunner(
		fake.Response{Result: runner.Result{Stdout: "celeryd RUNNING pid 12345, uptime 0:01:02"}},
		fake.Response{},
	)
	var out bytes.Buffer
	if err := newOrchestrator(run, &out).StartDebugServer("127.0.0.1", 9000); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := [][]string{
		{"supervisorctl", "-c", "config/supervisord.conf", "status", "celeryd"},
		{"python", "manage.py", "runserver", "127.0.0.1:9000"},
	}
	if !reflect.DeepEqual(run.Argvs(), want) {
		t.Fatalf("Expected: %v\nGot: %v", render.Render(want), render.Render(run.Argvs()))
	}
}

func TestStartDebugServerAbortsOnUnknownPoolStatus(t *testing.T) {
	run := fake.NewRunner(supervisorStatus("BACKOFF"))
	var out bytes.Buffer
	err := newOrchestrator(run, &out).StartDebugServer("0.0.0.0", 8000)
	if _, ok := err.(*UnknownStatusError); !ok {
		t.Fatalf("Expected UnknownStatusError, got %v", err)
	}
	if len(run.Calls()) != 1 {
		t.Fatalf("Expected nothing after the failed status probe, got %s", render.Render(run.Argvs()))
	}
}
