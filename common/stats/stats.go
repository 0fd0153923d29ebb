// Package stats provides a minimal interface backed by go-metrics for
// recording client-side request instrumentation. Wrapping go-metrics keeps
// the dependency from leaking to anyone pulling this in as a library, and
// lets receivers be scoped per component.
package stats

import (
	"encoding/json"
	"time"

	"github.com/rcrowley/go-metrics"
)

// StatsReceiver is a scoped sink for instruments. Scoping appends path
// segments so callers can hand sub-receivers down a call tree.
type StatsReceiver interface {
	Scope(scope ...string) StatsReceiver
	Counter(name ...string) metrics.Counter
	Latency(name ...string) metrics.Timer
	Render(pretty bool) []byte
}

// DefaultStatsReceiver returns a receiver backed by a fresh registry.
func DefaultStatsReceiver() StatsReceiver {
	return &defaultStatsReceiver{registry: metrics.NewRegistry()}
}

// NilStatsReceiver returns a receiver that discards everything. Useful
// as a default when callers don't care about instrumentation.
func NilStatsReceiver() StatsReceiver {
	return &defaultStatsReceiver{registry: metrics.NewRegistry(), discard: true}
}

type defaultStatsReceiver struct {
	registry metrics.Registry
	scope    []string
	discard  bool
}

func (s *defaultStatsReceiver) Scope(scope ...string) StatsReceiver {
	return &defaultStatsReceiver{
		registry: s.registry,
		scope:    append(append([]string{}, s.scope...), scope...),
		discard:  s.discard,
	}
}

func (s *defaultStatsReceiver) Counter(name ...string) metrics.Counter {
	if s.discard {
		return metrics.NilCounter{}
	}
	return metrics.GetOrRegisterCounter(s.scoped(name...), s.registry)
}

func (s *defaultStatsReceiver) Latency(name ...string) metrics.Timer {
	if s.discard {
		return metrics.NilTimer{}
	}
	return metrics.GetOrRegisterTimer(s.scoped(name...), s.registry)
}

func (s *defaultStatsReceiver) Render(pretty bool) []byte {
	view := map[string]interface{}{}
	s.registry.Each(func(name string, instrument interface{}) {
		switch m := instrument.(type) {
		case metrics.Counter:
			view[name] = m.Count()
		case metrics.Timer:
			snap := m.Snapshot()
			view[name] = map[string]interface{}{
				"count": snap.Count(),
				"avg":   time.Duration(int64(snap.Mean())).String(),
				"max":   time.Duration(snap.Max()).String(),
			}
		}
	})
	var out []byte
	if pretty {
		out, _ = json.MarshalIndent(view, "", "  ")
	} else {
		out, _ = json.Marshal(view)
	}
	return out
}

func (s *defaultStatsReceiver) scoped(name ...string) string {
	joined := ""
	for _, part := range append(append([]string{}, s.scope...), name...) {
		if joined != "" {
			joined += "/"
		}
		joined += part
	}
	return joined
}
