package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "get_ip_addresses",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "get_ip_addresses",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRequest(tt.tool, tt.duration, tt.success)

			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name       string
		endpoint   string
		duration   float64
		status     int
		wantStatus string
	}{
		{
			name:       "successful API call",
			endpoint:   "/ipam/ip-addresses/",
			duration:   0.1,
			status:     200,
			wantStatus: "200",
		},
		{
			name:       "not found",
			endpoint:   "/ipam/ip-addresses/",
			duration:   0.1,
			status:     404,
			wantStatus: "404",
		},
		{
			name:       "transport failure",
			endpoint:   "/status/",
			duration:   0.5,
			status:     0,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.endpoint, tt.duration, tt.status)

			counter, err := APIRequestsTotal.GetMetricWithLabelValues(tt.endpoint, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestDroppedRecords(t *testing.T) {
	counter, err := DroppedRecords.GetMetricWithLabelValues("ip_address")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	var before dto.Metric
	if err := counter.Write(&before); err != nil {
		t.Fatal(err)
	}

	DroppedRecords.WithLabelValues("ip_address").Add(3)

	var after dto.Metric
	if err := counter.Write(&after); err != nil {
		t.Fatal(err)
	}

	if got := after.Counter.GetValue() - before.Counter.GetValue(); got != 3 {
		t.Errorf("dropped records delta = %v, want 3", got)
	}
}

func TestRateLimitWaits(t *testing.T) {
	var before dto.Metric
	if err := RateLimitWaits.Write(&before); err != nil {
		t.Fatal(err)
	}

	RateLimitWaits.Inc()

	var after dto.Metric
	if err := RateLimitWaits.Write(&after); err != nil {
		t.Fatal(err)
	}

	if after.Counter.GetValue() != before.Counter.GetValue()+1 {
		t.Error("expected rate limit wait counter to be incremented")
	}
}

func TestRequestInFlight(t *testing.T) {
	gauge, err := RequestInFlight.GetMetricWithLabelValues("test_tool")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	RequestInFlight.WithLabelValues("test_tool").Inc()

	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatal(err)
	}
	if m.Gauge.GetValue() != 1 {
		t.Errorf("in-flight gauge = %v, want 1", m.Gauge.GetValue())
	}

	RequestInFlight.WithLabelValues("test_tool").Dec()

	if err := gauge.Write(&m); err != nil {
		t.Fatal(err)
	}
	if m.Gauge.GetValue() != 0 {
		t.Errorf("in-flight gauge = %v, want 0", m.Gauge.GetValue())
	}
}
