// Package metrics provides Prometheus observability metrics for the
// personnel report pipeline. It includes Critical and Important metrics for
// business and operational visibility.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// EmployeesAnalyzed tracks the number of employees in the latest report.
var EmployeesAnalyzed = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "employees_analyzed",
	Help:      "Number of employees with in-window transactions in the latest report",
})

// TotalRevenue tracks the summed revenue of the latest report window.
var TotalRevenue = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "total_revenue",
	Help:      "Total revenue across all analyzed employees in the latest report",
})

// AvgEfficiencyScore tracks the mean efficiency score of the latest report.
var AvgEfficiencyScore = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "avg_efficiency_score",
	Help:      "Average efficiency score (0-100) across analyzed employees",
})

// TopEfficiencyScore tracks the best efficiency score of the latest report.
var TopEfficiencyScore = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "top_efficiency_score",
	Help:      "Efficiency score of the top performer in the latest report",
})

// StaffingEntries tracks the number of staffing forecast rows produced.
var StaffingEntries = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "report",
	Name:      "staffing_entries",
	Help:      "Number of (department, hour) staffing requirements in the latest report",
})

// StaffingDefaultsApplied counts (department, hour) buckets with no history
// that fell back to the default expectations. High values indicate sparse
// input data.
var StaffingDefaultsApplied = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "report",
	Name:      "staffing_defaults_applied_total",
	Help:      "Count of staffing buckets that used default expectations due to missing history",
})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserRecordsTotal tracks total records successfully parsed.
var ParserRecordsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total CSV transaction records successfully parsed",
})

// ParserDurationSeconds tracks time to parse input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse the transactions CSV input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})

// ReportDurationSeconds tracks time to generate the personnel report.
var ReportDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "report",
	Name:      "duration_seconds",
	Help:      "Time taken to generate the personnel report",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// TransactionsProcessed tracks the number of transactions per report run.
var TransactionsProcessed = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "report",
	Name:      "transactions_processed",
	Help:      "Number of transactions processed per report generation run",
	Buckets:   []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000, 100000},
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetReportGauges resets all report gauges before a new generation run.
// Call this before GenerateReport.
func ResetReportGauges() {
	EmployeesAnalyzed.Set(0)
	TotalRevenue.Set(0)
	AvgEfficiencyScore.Set(0)
	TopEfficiencyScore.Set(0)
	StaffingEntries.Set(0)
}
