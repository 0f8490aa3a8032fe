package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fronzo556/Carrefour-Analysis/models"
)

const lineWidth = 80

// The text report samples the staffing table so terminal output stays short:
// peak hours only, capped at sampleLimit rows.
const (
	samplePeakStart = 10
	samplePeakEnd   = 18
	sampleLimit     = 15
)

// FormatText returns the human-readable representation of the report.
func FormatText(report *models.PersonnelReport) string {
	var sb strings.Builder
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	sb.WriteString(rule + "\n")
	sb.WriteString("CARREFOUR - PERSONNEL MANAGEMENT REPORT\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("Report Date: %s\n", report.ReportDate.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Analysis Period: %d days\n\n", report.Summary.PeriodDays))

	sb.WriteString(thin + "\n")
	sb.WriteString("EXECUTIVE SUMMARY\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("Total Employees Analyzed: %d\n", report.Summary.TotalEmployees))
	sb.WriteString(fmt.Sprintf("Total Revenue Generated: €%.2f\n", report.Summary.TotalRevenue))
	sb.WriteString(fmt.Sprintf("Average Efficiency Score: %.2f/100\n", report.Summary.AvgEfficiencyScore))
	topPerformer := report.Summary.TopPerformer
	if topPerformer == "" {
		topPerformer = "N/A"
	}
	sb.WriteString(fmt.Sprintf("Top Performer: %s\n\n", topPerformer))

	sb.WriteString(thin + "\n")
	sb.WriteString("EMPLOYEE PERFORMANCE METRICS\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("%-20s %-15s %-8s %-12s %-10s\n",
		"Employee", "Dept", "Trans", "Revenue", "Eff.Score"))
	sb.WriteString(thin + "\n")
	for _, p := range report.EmployeePerformances {
		sb.WriteString(fmt.Sprintf("%-20s %-15s %-8d €%-11.2f %-10.2f\n",
			p.EmployeeName, p.Department, p.TotalTransactions, p.TotalRevenue, p.EfficiencyScore))
	}
	sb.WriteString("\n")

	sb.WriteString(thin + "\n")
	sb.WriteString("STAFFING REQUIREMENTS (Sample Hours)\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("%-15s %-8s %-12s %-12s %s\n",
		"Department", "Hour", "Staff Req", "Exp. Trans", "Exp. Revenue"))
	sb.WriteString(thin + "\n")
	for _, req := range sampleRequirements(report.StaffingRequirements) {
		sb.WriteString(fmt.Sprintf("%-15s %-8s %-12d %-12d €%.2f\n",
			req.Department,
			fmt.Sprintf("%02d:00", req.Hour),
			req.RequiredStaff,
			req.ExpectedTransactions,
			req.ExpectedRevenue))
	}

	sb.WriteString("\n")
	sb.WriteString(rule + "\n")
	sb.WriteString("END OF REPORT\n")
	sb.WriteString(rule + "\n")

	return sb.String()
}

// FormatJSON returns the JSON representation of the report.
func FormatJSON(report *models.PersonnelReport) string {
	jsonBytes, _ := json.MarshalIndent(report, "", "  ")
	return string(jsonBytes)
}

// FormatCSV returns the report as two CSV tables, performance first, each
// introduced by a '#' section line so comment-aware readers can split them.
func FormatCSV(report *models.PersonnelReport) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{"# employee_performance"})
	writer.Write([]string{
		"employee_id", "employee_name", "department", "total_transactions",
		"total_revenue", "avg_transaction_value", "transactions_per_hour", "efficiency_score",
	})
	for _, p := range report.EmployeePerformances {
		writer.Write([]string{
			p.EmployeeID,
			p.EmployeeName,
			p.Department,
			strconv.Itoa(p.TotalTransactions),
			fmt.Sprintf("%.2f", p.TotalRevenue),
			fmt.Sprintf("%.2f", p.AvgTransactionValue),
			fmt.Sprintf("%.2f", p.TransactionsPerHour),
			fmt.Sprintf("%.2f", p.EfficiencyScore),
		})
	}

	writer.Write([]string{"# staffing_requirements"})
	writer.Write([]string{
		"department", "date", "hour", "required_staff",
		"expected_transactions", "expected_revenue",
	})
	for _, req := range report.StaffingRequirements {
		writer.Write([]string{
			req.Department,
			req.Date.Format("2006-01-02"),
			fmt.Sprintf("%02d:00", req.Hour),
			strconv.Itoa(req.RequiredStaff),
			strconv.Itoa(req.ExpectedTransactions),
			fmt.Sprintf("%.2f", req.ExpectedRevenue),
		})
	}

	writer.Flush()
	return sb.String()
}

// sampleRequirements filters the staffing sequence down to peak hours for
// the text report.
func sampleRequirements(requirements []models.StaffingRequirement) []models.StaffingRequirement {
	sample := make([]models.StaffingRequirement, 0, sampleLimit)
	for _, req := range requirements {
		if req.Hour < samplePeakStart || req.Hour > samplePeakEnd {
			continue
		}
		sample = append(sample, req)
		if len(sample) == sampleLimit {
			break
		}
	}
	return sample
}
