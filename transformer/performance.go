// Package transformer converts purchase transactions into personnel
// insights: per-employee performance metrics, per-department staffing
// forecasts, and the assembled personnel report. All functions are pure
// computations over validated input and never fail.
package transformer

import (
	"math"
	"sort"
	"time"

	"github.com/fronzo556/Carrefour-Analysis/directory"
	"github.com/fronzo556/Carrefour-Analysis/models"
)

// ComputePerformance derives per-employee metrics from the transactions
// falling inside [periodStart, periodEnd] (inclusive). Transactions outside
// the window are filtered out, and employees with no in-window transactions
// produce no record at all. The result is sorted by efficiency score, best
// first; ties keep the order in which the employees were first seen in the
// input.
func ComputePerformance(transactions []models.PurchaseTransaction, periodStart, periodEnd time.Time, dir *directory.Directory) []models.EmployeePerformance {
	grouped := make(map[string][]models.PurchaseTransaction)
	var order []string
	for _, tx := range transactions {
		if tx.Timestamp.Before(periodStart) || tx.Timestamp.After(periodEnd) {
			continue
		}
		if _, seen := grouped[tx.CashierID]; !seen {
			order = append(order, tx.CashierID)
		}
		grouped[tx.CashierID] = append(grouped[tx.CashierID], tx)
	}

	performances := make([]models.EmployeePerformance, 0, len(order))
	for _, employeeID := range order {
		txs := grouped[employeeID]

		totalTransactions := len(txs)
		totalRevenue := 0.0
		for _, tx := range txs {
			totalRevenue += tx.Amount
		}
		avgTransactionValue := totalRevenue / float64(totalTransactions)

		hours := workingHours(txs)
		transactionsPerHour := float64(totalTransactions) / hours

		// Throughput and basket value each contribute up to 50 points.
		baseEfficiency := math.Min(transactionsPerHour*5, 50)
		valueBonus := math.Min(avgTransactionValue/10, 50)
		efficiencyScore := math.Min(baseEfficiency+valueBonus, 100)

		performances = append(performances, models.EmployeePerformance{
			EmployeeID:          employeeID,
			EmployeeName:        dir.Resolve(employeeID),
			Department:          dominantDepartment(txs),
			PeriodStart:         periodStart,
			PeriodEnd:           periodEnd,
			TotalTransactions:   totalTransactions,
			TotalRevenue:        round2(totalRevenue),
			AvgTransactionValue: round2(avgTransactionValue),
			TransactionsPerHour: round2(transactionsPerHour),
			EfficiencyScore:     round2(efficiencyScore),
		})
	}

	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].EfficiencyScore > performances[j].EfficiencyScore
	})
	return performances
}

// workingHours approximates an employee's shift as the span between their
// first and last transaction, floored at one hour so rate math never divides
// by a near-zero span (single transaction, or all at the same instant).
func workingHours(txs []models.PurchaseTransaction) float64 {
	earliest := txs[0].Timestamp
	latest := txs[0].Timestamp
	for _, tx := range txs[1:] {
		if tx.Timestamp.Before(earliest) {
			earliest = tx.Timestamp
		}
		if tx.Timestamp.After(latest) {
			latest = tx.Timestamp
		}
	}
	hours := latest.Sub(earliest).Hours()
	if hours < 1 {
		return 1
	}
	return hours
}

// dominantDepartment returns the most frequent department label in the
// partition. Ties go to the department encountered earliest in input order.
func dominantDepartment(txs []models.PurchaseTransaction) string {
	counts := make(map[string]int)
	var order []string
	for _, tx := range txs {
		if _, seen := counts[tx.Department]; !seen {
			order = append(order, tx.Department)
		}
		counts[tx.Department]++
	}

	best := order[0]
	for _, dept := range order[1:] {
		if counts[dept] > counts[best] {
			best = dept
		}
	}
	return best
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
