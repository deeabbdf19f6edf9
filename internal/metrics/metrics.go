package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"seoplanner/internal/db"
)

var (
	generationEventDesc = prometheus.NewDesc(
		"seoplanner_generation_events_total",
		"Total generation event count by kind and outcome",
		[]string{"kind", "outcome"},
		nil,
	)
)

// GenerationCollector is a custom Prometheus collector that reads generation
// event counts from the database on each scrape.
type GenerationCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *GenerationCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- generationEventDesc
}

// Collect queries the database for all generation events and emits them as
// counters.
func (c *GenerationCollector) Collect(ch chan<- prometheus.Metric) {
	events, err := c.db.GetAllGenerationEvents(context.Background())
	if err != nil {
		slog.Error("failed to collect generation event metrics", "error", err)
		return
	}
	for _, e := range events {
		ch <- prometheus.MustNewConstMetric(
			generationEventDesc,
			prometheus.CounterValue,
			float64(e.Count),
			e.Kind,
			e.Outcome,
		)
	}
}

// Recorder provides async generation event recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&GenerationCollector{db: database})
	})
}

// RecordGeneration asynchronously records a generation event outcome.
func RecordGeneration(kind, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementGenerationEvent(context.Background(), kind, outcome); err != nil {
			slog.Error("failed to record generation event", "kind", kind, "outcome", outcome, "error", err)
		}
	}()
}
