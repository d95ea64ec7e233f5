// Package sjsmetrics exports the counters of an sjs runtime to Prometheus.
package sjsmetrics

import (
	"sync"

	"github.com/delaneyj/tickparty/sjs"
	"github.com/prometheus/client_golang/prometheus"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "sjs").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// PassBuckets are the histogram buckets for passes per drain.
	// Default: 1, 2, 4 ... 512
	PassBuckets []float64

	// DurationBuckets are the histogram buckets for drain duration.
	// Default: prometheus.DefBuckets
	DurationBuckets []float64
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

func WithPassBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.PassBuckets = buckets
	}
}

func WithDurationBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.DurationBuckets = buckets
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:       "sjs",
		PassBuckets:     prometheus.ExponentialBuckets(1, 2, 10),
		DurationBuckets: prometheus.DefBuckets,
	}
}

// Collector is a prometheus.Collector fed by a drain hook. It only ever sees
// snapshots handed over by the hook, so it can be scraped from any goroutine
// while the runtime keeps running on its own.
//
//	c := sjsmetrics.NewCollector()
//	rs := sjs.New(sjs.WithDrainHook(c.Hook()))
//	prometheus.MustRegister(c)
type Collector struct {
	mu   sync.Mutex
	last sjs.Stats

	time           *prometheus.Desc
	drains         *prometheus.Desc
	passes         *prometheus.Desc
	changes        *prometheus.Desc
	recomputations *prometheus.Desc
	disposals      *prometheus.Desc
	aborts         *prometheus.Desc

	drainPasses   prometheus.Histogram
	drainDuration prometheus.Histogram
}

var _ prometheus.Collector = (*Collector)(nil)

func NewCollector(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(config.Namespace, config.Subsystem, name),
			help, nil, config.ConstLabels,
		)
	}

	return &Collector{
		time:           desc("time", "Current tick of the runtime clock"),
		drains:         desc("drains_total", "Total number of outermost drains"),
		passes:         desc("passes_total", "Total number of passes over the clock queues"),
		changes:        desc("changes_total", "Total number of data changes applied"),
		recomputations: desc("recomputations_total", "Total number of computation updates"),
		disposals:      desc("disposals_total", "Total number of disposed nodes"),
		aborts:         desc("aborts_total", "Total number of drains ended by a panic"),

		drainPasses: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "drain_passes",
			Help:        "Passes taken by a single drain",
			ConstLabels: config.ConstLabels,
			Buckets:     config.PassBuckets,
		}),
		drainDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "drain_duration_seconds",
			Help:        "Wall time of a single drain in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.DurationBuckets,
		}),
	}
}

// Hook returns the drain hook to register with sjs.WithDrainHook.
func (c *Collector) Hook() sjs.DrainHook {
	return c.observe
}

func (c *Collector) observe(info sjs.DrainInfo) {
	c.mu.Lock()
	c.last = info.Stats
	c.mu.Unlock()

	c.drainPasses.Observe(float64(info.Passes))
	c.drainDuration.Observe(info.Duration().Seconds())
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.time
	ch <- c.drains
	ch <- c.passes
	ch <- c.changes
	ch <- c.recomputations
	ch <- c.disposals
	ch <- c.aborts
	c.drainPasses.Describe(ch)
	c.drainDuration.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	s := c.last
	c.mu.Unlock()

	ch <- prometheus.MustNewConstMetric(c.time, prometheus.GaugeValue, float64(s.Time))
	counter := func(desc *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.CounterValue, float64(v))
	}
	counter(c.drains, s.Drains)
	counter(c.passes, s.Passes)
	counter(c.changes, s.Changes)
	counter(c.recomputations, s.Recomputations)
	counter(c.disposals, s.Disposals)
	counter(c.aborts, s.Aborts)

	c.drainPasses.Collect(ch)
	c.drainDuration.Collect(ch)
}
