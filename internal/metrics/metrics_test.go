package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordFetch(t *testing.T) {
	before := testutil.ToFloat64(ForecastFetchesTotal.WithLabelValues("timeout"))

	RecordFetch("timeout", 3*time.Second)

	after := testutil.ToFloat64(ForecastFetchesTotal.WithLabelValues("timeout"))
	if after-before != 1 {
		t.Errorf("RecordFetch() incremented timeout counter by %v, want 1", after-before)
	}
}

func TestRecordHeading(t *testing.T) {
	before := testutil.ToFloat64(HeadingReadingsTotal.WithLabelValues("static"))

	RecordHeading("static", 123.5)

	after := testutil.ToFloat64(HeadingReadingsTotal.WithLabelValues("static"))
	if after-before != 1 {
		t.Errorf("RecordHeading() incremented counter by %v, want 1", after-before)
	}

	if got := testutil.ToFloat64(CurrentHeading); got != 123.5 {
		t.Errorf("CurrentHeading = %v, want 123.5", got)
	}
}

func TestRecordFix(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		result string
	}{
		{"success", nil, "success"},
		{"error", errors.New("permission denied"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(LocationFixesTotal.WithLabelValues(tt.result))
			RecordFix(tt.err)
			after := testutil.ToFloat64(LocationFixesTotal.WithLabelValues(tt.result))
			if after-before != 1 {
				t.Errorf("RecordFix(%v) incremented %s by %v, want 1", tt.err, tt.result, after-before)
			}
		})
	}
}

func TestAppInfo(t *testing.T) {
	if got := testutil.ToFloat64(AppInfo); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}
