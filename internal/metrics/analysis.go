package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	analysesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resumerank",
			Name:      "analyses_total",
			Help:      "Total number of completed analysis requests",
		},
	)

	analysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resumerank",
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end analysis pipeline duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	analysisCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "resumerank",
			Name:      "analysis_candidates",
			Help:      "Number of resumes per analysis request",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	duplicatePairsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resumerank",
			Name:      "duplicate_pairs_total",
			Help:      "Total number of duplicate resume pairs flagged",
		},
	)
)

// RegisterAnalysisMetrics registers the pipeline metrics explicitly (no init()).
func RegisterAnalysisMetrics() {
	prometheus.MustRegister(analysesTotal)
	prometheus.MustRegister(analysisDuration)
	prometheus.MustRegister(analysisCandidates)
	prometheus.MustRegister(duplicatePairsTotal)
}

// ObserveAnalysis records one finished analysis run.
func ObserveAnalysis(took time.Duration, candidates, duplicatePairs int) {
	analysesTotal.Inc()
	analysisDuration.Observe(took.Seconds())
	analysisCandidates.Observe(float64(candidates))
	duplicatePairsTotal.Add(float64(duplicatePairs))
}
