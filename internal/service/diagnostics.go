package service

import (
	"context"
	"fmt"
)

// StoreProber is the slice of the store handle diagnostics needs. A nil
// prober is the "available but not initialized" state.
type StoreProber interface {
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
}

// StatusReport is the /test payload. Probe failures are embedded as bounded
// strings; the report itself never fails.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics reports store connectivity and configuration status.
type Diagnostics interface {
	// Report probes the store and returns its status. It never returns an
	// error and never panics; failures are captured inside the report.
	Report(ctx context.Context) *StatusReport
}

type diagnostics struct {
	store      StoreProber
	urlSet     bool
	nameSet    bool
	maxListing int
}

// NewDiagnostics constructs a Diagnostics reporter. store may be nil when the
// database is unconfigured or unreachable; urlSet and nameSet carry the
// presence (never the values) of the two connection settings.
func NewDiagnostics(store StoreProber, urlSet, nameSet bool) Diagnostics {
	return &diagnostics{store: store, urlSet: urlSet, nameSet: nameSet, maxListing: 10}
}

const maxProbeErrorLen = 50

func (d *diagnostics) Report(ctx context.Context) (report *StatusReport) {
	report = &StatusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      presence(d.urlSet),
		DatabaseName:     presence(d.nameSet),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	// The report must come back whole even if a probe panics.
	defer func() {
		if r := recover(); r != nil {
			report.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxProbeErrorLen)
		}
	}()

	if d.store == nil {
		report.Database = "⚠️ Available but not initialized"
		return report
	}

	if err := d.store.Ping(ctx); err != nil {
		report.Database = "❌ Error: " + truncate(err.Error(), maxProbeErrorLen)
		return report
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	names, err := d.store.ListCollectionNames(ctx, d.maxListing)
	if err != nil {
		report.Database = "⚠️ Connected but Error: " + truncate(err.Error(), maxProbeErrorLen)
		return report
	}

	if names != nil {
		report.Collections = names
	}
	report.Database = "✅ Connected & Working"
	return report
}

func presence(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
