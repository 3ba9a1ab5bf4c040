package services

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestConfigForProdHost(t *testing.T) {
	cfg := NewConfig(ProdHostname)
	if !reflect.DeepEqual(cfg.CommandPrefix, []string{"sudo", "-u", "celery"}) {
		t.Fatalf("Expected the celery-user prefix on prod, got %s", spew.Sdump(cfg))
	}
	if cfg.SupervisorConf != "config/prod_supervisord.conf" {
		t.Fatalf("Expected the prod supervisord config, got %s", spew.Sdump(cfg))
	}
}

func TestConfigForOtherHosts(t *testing.T) {
	cfg := NewConfig("laptop")
	if len(cfg.CommandPrefix) != 0 {
		t.Fatalf("Expected no prefix off prod, got %s", spew.Sdump(cfg))
	}
	if cfg.SupervisorConf != "config/supervisord.conf" {
		t.Fatalf("Expected the dev supervisord config, got %s", spew.Sdump(cfg))
	}
}

func TestPrefixAppliesToSupervisorCommandsOnly(t *testing.T) {
	cfg := NewConfig(ProdHostname)
	want := []string{"sudo", "-u", "celery", "supervisorctl", "-c", "config/prod_supervisord.conf", "status", "celeryd"}
	if got := cfg.supervisorctlArgv("status"); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	// rabbitmq runs under plain sudo regardless of host.
	if got := cfg.brokerctlArgv("status"); !reflect.DeepEqual(got, []string{"sudo", "rabbitmqctl", "status"}) {
		t.Fatalf("Expected plain sudo for rabbitmqctl, got %v", got)
	}
}
