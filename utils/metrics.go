package utils

import (
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// NewMetricsScope returns an in-memory scope whose values are read back by LogMetrics
func NewMetricsScope(name string) tally.TestScope {
	return tally.NewTestScope(name, map[string]string{})
}

// LogMetrics writes the current counters and gauges of scope in one entry
func LogMetrics(prefix string, scope tally.TestScope) {
	snapshot := scope.Snapshot()

	fields := log.Fields{"prefix": prefix}
	for _, c := range snapshot.Counters() {
		fields[c.Name()] = c.Value()
	}
	for _, g := range snapshot.Gauges() {
		fields[g.Name()] = g.Value()
	}

	log.WithFields(fields).Debug("run metrics")
}
