package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "portfolio"

	metricLabelEndpoint = "endpoint"
	metricLabelResult   = "result"
	metricLabelView     = "view"
	metricLabelState    = "state"
)

// Metrics is the structure that holds all prometheus metrics
var (
	// ContentFetchCounter count the number of content api calls
	ContentFetchCounter = newCounterVec(
		"content_fetch_count",
		"Count of content api requests for each endpoint",
		metricLabelEndpoint, metricLabelResult,
	)
	// ContentFetchDuration observe the duration of content api calls
	ContentFetchDuration = newSummaryVec(
		"content_fetch_duration_seconds",
		"Seconds to request and decode a content api reply",
		metricLabelEndpoint, metricLabelResult,
	)
	// ViewRenderCounter count rendered views by their settled state
	ViewRenderCounter = newCounterVec(
		"view_render_count",
		"Number of rendered views by view and state",
		metricLabelView, metricLabelState,
	)
	// StaleLoadsDiscarded count settled loads that were superseded before they could be committed
	StaleLoadsDiscarded = newCounterVec(
		"stale_loads_discarded_count",
		"Number of load results dropped because a newer load was dispatched",
	)
	// AssetRequestCounter count static asset requests
	AssetRequestCounter = newCounterVec(
		"asset_request_count",
		"Number of static asset requests",
		metricLabelResult,
	)
)

func newSummaryVec(name, help string, labels ...string) *prometheus.SummaryVec {
	vec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}

func newCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	prometheus.MustRegister(vec)
	return vec
}
