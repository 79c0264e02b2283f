package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Forecast fetch metrics
var (
	// ForecastFetchesTotal tracks forecast requests by outcome
	ForecastFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "windvane_forecast_fetches_total",
			Help: "Total number of forecast requests by outcome",
		},
		[]string{"outcome"},
	)

	// ForecastFetchDuration tracks how long forecast requests take, timeouts included
	ForecastFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "windvane_forecast_fetch_duration_seconds",
			Help:    "Duration of forecast requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Device metrics
var (
	// HeadingReadingsTotal tracks compass readings delivered to the screen
	HeadingReadingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "windvane_heading_readings_total",
			Help: "Total number of compass heading readings by source",
		},
		[]string{"source"},
	)

	// LocationFixesTotal tracks location fix attempts by result
	LocationFixesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "windvane_location_fixes_total",
			Help: "Total number of location fix attempts by result",
		},
		[]string{"result"},
	)

	// CurrentHeading is the latest compass heading in degrees
	CurrentHeading = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "windvane_heading_degrees",
			Help: "Latest magnetic compass heading in degrees",
		},
	)
)

var (
	// AppInfo provides static information about the application
	AppInfo = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "windvane_app_info",
			Help: "Application information (always 1)",
		},
	)

	// AppStartTime records when the application started
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "windvane_app_start_time_seconds",
			Help: "Unix timestamp of when the application started",
		},
	)
)

func init() {
	AppInfo.Set(1)
	AppStartTime.SetToCurrentTime()
}

// RecordFetch records a finished forecast request
func RecordFetch(outcome string, duration time.Duration) {
	ForecastFetchesTotal.WithLabelValues(outcome).Inc()
	ForecastFetchDuration.Observe(duration.Seconds())
}

// RecordHeading records a compass reading from the given source
func RecordHeading(source string, heading float64) {
	HeadingReadingsTotal.WithLabelValues(source).Inc()
	CurrentHeading.Set(heading)
}

// RecordFix records a location fix attempt
func RecordFix(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	LocationFixesTotal.WithLabelValues(result).Inc()
}
