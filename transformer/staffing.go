package transformer

import (
	"math"
	"sort"
	"time"

	"github.com/fronzo556/Carrefour-Analysis/metrics"
	"github.com/fronzo556/Carrefour-Analysis/models"
)

// Store operating hours. Forecasts cover 8:00 through 21:00 inclusive.
const (
	OpeningHour = 8
	ClosingHour = 21
)

// One staff member per 20 expected transactions per hour.
const transactionsPerStaff = 20

// Defaults applied when a (department, hour) pair has no history, so sparse
// data never produces a zero-staffing recommendation.
const (
	DefaultExpectedTransactions = 10
	DefaultExpectedRevenue      = 100.0
)

type bucketKey struct {
	department string
	hour       int
}

type bucketStats struct {
	counts   []int
	revenues []float64
}

// ComputeStaffing forecasts required headcount per (department, hour) for
// analysisDate, covering every department observed anywhere in the input and
// every operating hour. Unlike the performance window, the forecast is built
// from the entire transaction history: the hourly pattern model deliberately
// ignores the rolling report window. Results are sorted by department then
// hour.
func ComputeStaffing(transactions []models.PurchaseTransaction, analysisDate time.Time) []models.StaffingRequirement {
	stats := make(map[bucketKey]*bucketStats)
	seen := make(map[string]bool)
	var departments []string
	for _, tx := range transactions {
		if !seen[tx.Department] {
			seen[tx.Department] = true
			departments = append(departments, tx.Department)
		}
		key := bucketKey{department: tx.Department, hour: tx.Timestamp.Hour()}
		st := stats[key]
		if st == nil {
			st = &bucketStats{}
			stats[key] = st
		}
		st.counts = append(st.counts, 1)
		st.revenues = append(st.revenues, tx.Amount)
	}

	requirements := make([]models.StaffingRequirement, 0, len(departments)*(ClosingHour-OpeningHour+1))
	for _, department := range departments {
		for hour := OpeningHour; hour <= ClosingHour; hour++ {
			expectedTransactions := DefaultExpectedTransactions
			expectedRevenue := DefaultExpectedRevenue

			if st, ok := stats[bucketKey{department: department, hour: hour}]; ok {
				countSum := 0
				for _, c := range st.counts {
					countSum += c
				}
				expectedTransactions = countSum / len(st.counts)

				revenueSum := 0.0
				for _, r := range st.revenues {
					revenueSum += r
				}
				expectedRevenue = revenueSum / float64(len(st.revenues))
			} else {
				metrics.StaffingDefaultsApplied.Inc()
			}

			requiredStaff := int(math.Ceil(float64(expectedTransactions) / transactionsPerStaff))
			if requiredStaff < 1 {
				requiredStaff = 1
			}

			requirements = append(requirements, models.StaffingRequirement{
				Department:           department,
				Date:                 analysisDate,
				Hour:                 hour,
				RequiredStaff:        requiredStaff,
				ExpectedTransactions: expectedTransactions,
				ExpectedRevenue:      round2(expectedRevenue),
			})
		}
	}

	sort.Slice(requirements, func(i, j int) bool {
		if requirements[i].Department != requirements[j].Department {
			return requirements[i].Department < requirements[j].Department
		}
		return requirements[i].Hour < requirements[j].Hour
	})
	return requirements
}
