package models

import "time"

// PurchaseTransaction represents a single point-of-sale purchase record.
// It is shared across packages as an immutable input value; the parser
// guarantees Amount and ItemsCount are non-negative and Timestamp is
// well-formed.
type PurchaseTransaction struct {
	TransactionID   string
	Timestamp       time.Time
	CashierID       string
	Department      string
	ProductCategory string
	Amount          float64
	ItemsCount      int
	// CustomerID is empty for anonymous sales.
	CustomerID string
}

// EmployeePerformance holds the metrics derived for one cashier over the
// analysis window. Instances are built once per report generation and never
// mutated afterwards.
type EmployeePerformance struct {
	EmployeeID          string    `json:"employee_id"`
	EmployeeName        string    `json:"employee_name"`
	Department          string    `json:"department"`
	PeriodStart         time.Time `json:"period_start"`
	PeriodEnd           time.Time `json:"period_end"`
	TotalTransactions   int       `json:"total_transactions"`
	TotalRevenue        float64   `json:"total_revenue"`
	AvgTransactionValue float64   `json:"avg_transaction_value"`
	TransactionsPerHour float64   `json:"transactions_per_hour"`
	EfficiencyScore     float64   `json:"efficiency_score"`
}

// StaffingRequirement is the forecasted minimum headcount for a department
// at a given store hour.
type StaffingRequirement struct {
	Department           string    `json:"department"`
	Date                 time.Time `json:"date"`
	Hour                 int       `json:"hour"`
	RequiredStaff        int       `json:"required_staff"`
	ExpectedTransactions int       `json:"expected_transactions"`
	ExpectedRevenue      float64   `json:"expected_revenue"`
}

// ReportSummary aggregates the employee performance sequence. TopPerformer
// is empty when no employees were analyzed.
type ReportSummary struct {
	TotalEmployees     int     `json:"total_employees"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgEfficiencyScore float64 `json:"avg_efficiency_score"`
	TopPerformer       string  `json:"top_performer,omitempty"`
	PeriodDays         int     `json:"period_days"`
}

// PersonnelReport is the complete output of one report generation run.
// EmployeePerformances is sorted best-to-worst by efficiency score;
// StaffingRequirements is sorted by department then hour.
type PersonnelReport struct {
	ReportDate           time.Time             `json:"report_date"`
	EmployeePerformances []EmployeePerformance `json:"employee_performances"`
	StaffingRequirements []StaffingRequirement `json:"staffing_requirements"`
	Summary              ReportSummary         `json:"summary"`
}
