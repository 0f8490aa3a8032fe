package transformer_test

import (
	"testing"
	"time"

	"github.com/fronzo556/Carrefour-Analysis/directory"
	"github.com/fronzo556/Carrefour-Analysis/models"
	"github.com/fronzo556/Carrefour-Analysis/transformer"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// tx builds a minimal transaction offset from baseTime.
func tx(id, cashier, dept string, amount float64, offset time.Duration) models.PurchaseTransaction {
	return models.PurchaseTransaction{
		TransactionID:   id,
		Timestamp:       baseTime.Add(offset),
		CashierID:       cashier,
		Department:      dept,
		ProductCategory: "General",
		Amount:          amount,
		ItemsCount:      1,
	}
}

func TestComputePerformance_Metrics(t *testing.T) {
	// Two transactions 30 minutes apart: span is floored to 1 working hour.
	transactions := []models.PurchaseTransaction{
		tx("T1", "CASH001", "Grocery", 50, 0),
		tx("T2", "CASH001", "Grocery", 30, 30*time.Minute),
	}

	dir := directory.New()
	dir.Register("CASH001", "Maria Rossi")

	got := transformer.ComputePerformance(transactions,
		baseTime.Add(-24*time.Hour), baseTime.Add(24*time.Hour), dir)

	assert.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "CASH001", p.EmployeeID)
	assert.Equal(t, "Maria Rossi", p.EmployeeName)
	assert.Equal(t, "Grocery", p.Department)
	assert.Equal(t, 2, p.TotalTransactions)
	assert.Equal(t, 80.00, p.TotalRevenue)
	assert.Equal(t, 40.00, p.AvgTransactionValue)
	assert.Equal(t, 2.00, p.TransactionsPerHour)
	// min(2*5, 50) + min(40/10, 50) = 10 + 4
	assert.Equal(t, 14.00, p.EfficiencyScore)
}

func TestComputePerformance_WindowFiltering(t *testing.T) {
	transactions := []models.PurchaseTransaction{
		tx("T1", "CASH001", "Grocery", 50, 0),
		tx("T2", "CASH001", "Grocery", 30, 48*time.Hour),  // after window
		tx("T3", "CASH002", "Bakery", 20, -72*time.Hour),  // before window
		tx("T4", "CASH003", "Grocery", 10, 24*time.Hour),  // at periodEnd, inclusive
		tx("T5", "CASH004", "Grocery", 10, -24*time.Hour), // at periodStart, inclusive
	}

	got := transformer.ComputePerformance(transactions,
		baseTime.Add(-24*time.Hour), baseTime.Add(24*time.Hour), directory.New())

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.EmployeeID)
	}
	// CASH002 has no in-window transactions, so no record at all.
	assert.NotContains(t, ids, "CASH002")
	assert.ElementsMatch(t, []string{"CASH001", "CASH003", "CASH004"}, ids)

	for _, p := range got {
		if p.EmployeeID == "CASH001" {
			assert.Equal(t, 1, p.TotalTransactions, "out-of-window transaction must be excluded")
		}
	}
}

func TestComputePerformance_ScoreBounds(t *testing.T) {
	tests := map[string]struct {
		transactions  []models.PurchaseTransaction
		expectedScore float64
	}{
		"BothFactorsCapped": {
			// 60 transactions in one hour (tph capped at 50 points) with a
			// huge basket value (capped at 50 points): total caps at 100.
			transactions: func() []models.PurchaseTransaction {
				txs := make([]models.PurchaseTransaction, 0, 60)
				for i := 0; i < 60; i++ {
					txs = append(txs, tx("T", "CASH001", "Electronics", 5000, time.Duration(i)*time.Minute))
				}
				return txs
			}(),
			expectedScore: 100.00,
		},
		"TinySingleTransaction": {
			// 1 tx/hour = 5 points, 0.50/10 = 0.05 points
			transactions: []models.PurchaseTransaction{
				tx("T1", "CASH001", "Grocery", 0.50, 0),
			},
			expectedScore: 5.05,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := transformer.ComputePerformance(tt.transactions,
				baseTime.Add(-24*time.Hour), baseTime.Add(24*time.Hour), directory.New())

			assert.Len(t, got, 1)
			assert.Equal(t, tt.expectedScore, got[0].EfficiencyScore)
			assert.GreaterOrEqual(t, got[0].EfficiencyScore, 0.0)
			assert.LessOrEqual(t, got[0].EfficiencyScore, 100.0)
		})
	}
}

func TestComputePerformance_OrderingAndTies(t *testing.T) {
	// CASH001 and CASH002 end up with identical scores; CASH003 scores higher.
	transactions := []models.PurchaseTransaction{
		tx("T1", "CASH001", "Grocery", 20, 0),
		tx("T2", "CASH002", "Grocery", 20, 0),
		tx("T3", "CASH003", "Grocery", 200, 0),
	}

	got := transformer.ComputePerformance(transactions,
		baseTime.Add(-24*time.Hour), baseTime.Add(24*time.Hour), directory.New())

	assert.Len(t, got, 3)
	assert.Equal(t, "CASH003", got[0].EmployeeID)
	// Equal scores keep first-seen input order.
	assert.Equal(t, "CASH001", got[1].EmployeeID)
	assert.Equal(t, "CASH002", got[2].EmployeeID)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].EfficiencyScore, got[i-1].EfficiencyScore)
	}
}

func TestComputePerformance_DominantDepartment(t *testing.T) {
	tests := map[string]struct {
		departments []string
		expected    string
	}{
		"ClearMajority": {
			departments: []string{"Bakery", "Grocery", "Grocery"},
			expected:    "Grocery",
		},
		"TieGoesToFirstSeen": {
			departments: []string{"Bakery", "Grocery", "Grocery", "Bakery"},
			expected:    "Bakery",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			transactions := make([]models.PurchaseTransaction, 0, len(tt.departments))
			for i, dept := range tt.departments {
				transactions = append(transactions,
					tx("T", "CASH001", dept, 10, time.Duration(i)*time.Minute))
			}

			got := transformer.ComputePerformance(transactions,
				baseTime.Add(-24*time.Hour), baseTime.Add(24*time.Hour), directory.New())

			assert.Len(t, got, 1)
			assert.Equal(t, tt.expected, got[0].Department)
		})
	}
}

func TestComputePerformance_UnknownEmployeeName(t *testing.T) {
	transactions := []models.PurchaseTransaction{
		tx("T1", "CASH999", "Grocery", 10, 0),
	}

	got := transformer.ComputePerformance(transactions,
		baseTime.Add(-24*time.Hour), baseTime.Add(24*time.Hour), directory.New())

	assert.Len(t, got, 1)
	assert.Equal(t, "Employee CASH999", got[0].EmployeeName)
}
