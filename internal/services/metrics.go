package services

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"inspection-hub/go-backend/internal/aggregator"
	"inspection-hub/go-backend/pkg/pb"
)

const metricsNamespace = "stream_hub"

// Metrics is a prometheus.Collector for the frame path.
type Metrics struct {
	frames        *prometheus.CounterVec
	shed          prometheus.Counter
	frameLatency  prometheus.Histogram
	workerCalls   *prometheus.CounterVec
	workerLatency *prometheus.HistogramVec
	judgments     *prometheus.CounterVec
	activeStreams *prometheus.GaugeVec
	streams       atomic.Int64

	mu         sync.Mutex
	queueStats func() aggregator.QueueStats
}

func NewMetrics() *Metrics {
	return &Metrics{
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "frames_total",
				Help:      "Processed frames by outcome status.",
			}, []string{"status"},
		),
		shed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "frames_shed_total",
				Help:      "Frames skipped because they were older than the shed threshold.",
			},
		),
		frameLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "frame_duration_seconds",
				Help:      "Time from dequeue to emission of one processed frame.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
		),
		workerCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "worker_calls_total",
				Help:      "Calls to image workers by component and gRPC code.",
			}, []string{"component", "code"},
		),
		workerLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "worker_call_duration_seconds",
				Help:      "Latency of image worker calls.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5, 30, 60},
			}, []string{"component"},
		),
		judgments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "judgments_total",
				Help:      "Judgments attached to processed frames.",
			}, []string{"judgment"},
		),
		activeStreams: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "active_streams",
				Help:      "Open frame streams by transport.",
			}, []string{"transport"},
		),
	}
}

// WatchQueue exposes the judgment queue depth and drop count.
func (m *Metrics) WatchQueue(stats func() aggregator.QueueStats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queueStats = stats
}

func (m *Metrics) FrameDone(status pb.ProcessingStatus, d time.Duration) {
	m.frames.WithLabelValues(StatusLabel(status)).Inc()
	m.frameLatency.Observe(d.Seconds())
}

// StatusLabel is the short form of a frame status, e.g. "SUCCESS".
func StatusLabel(status pb.ProcessingStatus) string {
	return strings.TrimPrefix(status.String(), "PROCESSING_STATUS_")
}

func (m *Metrics) FrameShed() {
	m.shed.Inc()
}

func (m *Metrics) WorkerCall(component string, code string, d time.Duration) {
	m.workerCalls.WithLabelValues(component, code).Inc()
	m.workerLatency.WithLabelValues(component).Observe(d.Seconds())
}

func (m *Metrics) Judgment(j string) {
	m.judgments.WithLabelValues(j).Inc()
}

func (m *Metrics) StreamOpened(transport string) {
	m.streams.Add(1)
	m.activeStreams.WithLabelValues(transport).Inc()
}

func (m *Metrics) StreamClosed(transport string) {
	m.streams.Add(-1)
	m.activeStreams.WithLabelValues(transport).Dec()
}

// ActiveStreams sums open streams across transports.
func (m *Metrics) ActiveStreams() int {
	return int(m.streams.Load())
}

var (
	queueDepthDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "judgment_queue", "depth"),
		"Events buffered in the judgment queue.", nil, nil,
	)
	queueDroppedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(metricsNamespace, "judgment_queue", "dropped_total"),
		"Judgment events dropped because the queue was full or closed.", nil, nil,
	)
)

// Describe is part of the prometheus.Collector interface.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.frames.Describe(ch)
	m.shed.Describe(ch)
	m.frameLatency.Describe(ch)
	m.workerCalls.Describe(ch)
	m.workerLatency.Describe(ch)
	m.judgments.Describe(ch)
	m.activeStreams.Describe(ch)
	ch <- queueDepthDesc
	ch <- queueDroppedDesc
}

// Collect is part of the prometheus.Collector interface.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.frames.Collect(ch)
	m.shed.Collect(ch)
	m.frameLatency.Collect(ch)
	m.workerCalls.Collect(ch)
	m.workerLatency.Collect(ch)
	m.judgments.Collect(ch)
	m.activeStreams.Collect(ch)

	m.mu.Lock()
	stats := m.queueStats
	m.mu.Unlock()
	if stats == nil {
		return
	}
	s := stats()
	ch <- prometheus.MustNewConstMetric(queueDepthDesc, prometheus.GaugeValue, float64(s.Depth))
	ch <- prometheus.MustNewConstMetric(queueDroppedDesc, prometheus.CounterValue, float64(s.Dropped))
}
