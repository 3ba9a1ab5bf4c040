// Package stats provides a minimal metrics interface backed by go-metrics.
// A StatsReceiver is passed down a call tree and scoped at each level, so a
// component only ever sees its own namespace.
package stats

import (
	"strings"

	"github.com/rcrowley/go-metrics"
)

type Counter interface {
	Inc(int64)
	Count() int64
}

type Gauge interface {
	Update(int64)
	Value() int64
}

type StatsReceiver interface {
	// Return a stats receiver that will automatically namespace elements
	// with the given scope args.
	//
	//   statsReceiver.Scope("foo", "bar").Counter("baz")  // is equivalent to
	//   statsReceiver.Counter("foo", "bar", "baz")
	//
	Scope(scope ...string) StatsReceiver

	Counter(name ...string) Counter

	Gauge(name ...string) Gauge
}

// DefaultStatsReceiver returns a receiver over a fresh go-metrics registry.
func DefaultStatsReceiver() StatsReceiver {
	return &defaultStatsReceiver{registry: metrics.NewRegistry()}
}

// NilStatsReceiver discards everything it is given.
func NilStatsReceiver(scope ...string) StatsReceiver {
	return &nilStatsReceiver{}
}

type defaultStatsReceiver struct {
	registry metrics.Registry
	scope    []string
}

func (s *defaultStatsReceiver) Scope(scope ...string) StatsReceiver {
	return &defaultStatsReceiver{registry: s.registry, scope: append(append([]string{}, s.scope...), scope...)}
}

func (s *defaultStatsReceiver) Counter(name ...string) Counter {
	return metrics.GetOrRegisterCounter(s.scoped(name...), s.registry)
}

func (s *defaultStatsReceiver) Gauge(name ...string) Gauge {
	return metrics.GetOrRegisterGauge(s.scoped(name...), s.registry)
}

// Hierarchical names use '/' as the path separator, so any '/' inside a name
// element is stripped rather than allowed to fake extra levels. Counters can
// be dynamically named (i.e. with error strings), so stripping beats failing.
func (s *defaultStatsReceiver) scoped(name ...string) string {
	elems := append(append([]string{}, s.scope...), name...)
	for i, e := range elems {
		elems[i] = strings.Replace(e, "/", "_SLASH_", -1)
	}
	return strings.Join(elems, "/")
}

type nilStatsReceiver struct{}

func (s *nilStatsReceiver) Scope(scope ...string) StatsReceiver { return s }
func (s *nilStatsReceiver) Counter(name ...string) Counter { return &nilCounter{} }
func (s *nilStatsReceiver) Gauge(name ...string) Gauge { return &nilGauge{} }

type nilCounter struct{}

func (c *nilCounter) Inc(int64)    {}
func (c *nilCounter) Count() int64 { return 0 }

type nilGauge struct{}

func (g *nilGauge) Update(int64) {}
func (g *nilGauge) Value() int64 { return 0 }
