package transformer

import (
	"time"

	"github.com/fronzo556/Carrefour-Analysis/directory"
	"github.com/fronzo556/Carrefour-Analysis/models"
)

// DefaultPeriodDays is the rolling performance window used when the caller
// does not configure one.
const DefaultPeriodDays = 7

// GenerateReport assembles the complete personnel report for reportDate.
// Performance metrics cover the periodDays window ending at reportDate;
// staffing requirements use the full history (see ComputeStaffing). The
// empty-input path is safe: all summary fields stay at their zero values.
func GenerateReport(transactions []models.PurchaseTransaction, reportDate time.Time, periodDays int, dir *directory.Directory) *models.PersonnelReport {
	periodEnd := reportDate
	periodStart := reportDate.AddDate(0, 0, -periodDays)

	performances := ComputePerformance(transactions, periodStart, periodEnd, dir)
	requirements := ComputeStaffing(transactions, reportDate)

	summary := models.ReportSummary{
		TotalEmployees: len(performances),
		PeriodDays:     periodDays,
	}
	if len(performances) > 0 {
		totalRevenue := 0.0
		totalScore := 0.0
		for _, p := range performances {
			totalRevenue += p.TotalRevenue
			totalScore += p.EfficiencyScore
		}
		summary.TotalRevenue = round2(totalRevenue)
		summary.AvgEfficiencyScore = round2(totalScore / float64(len(performances)))
		summary.TopPerformer = performances[0].EmployeeName
	}

	return &models.PersonnelReport{
		ReportDate:           reportDate,
		EmployeePerformances: performances,
		StaffingRequirements: requirements,
		Summary:              summary,
	}
}
