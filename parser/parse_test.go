package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	customerrors "github.com/fronzo556/Carrefour-Analysis/errors"
	"github.com/fronzo556/Carrefour-Analysis/models"
	"github.com/fronzo556/Carrefour-Analysis/parser"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	ts := func(s string) time.Time {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}
		return parsed
	}

	tests := map[string]struct {
		input         string
		expectedData  []models.PurchaseTransaction
		expectedError error
	}{
		"ValidInput_SingleLine": {
			input: `
TXN001, 2024-01-15T09:30:00Z, CASH001, Grocery, Fresh Produce, 45.50, 12, CUST042
`,
			expectedData: []models.PurchaseTransaction{
				{
					TransactionID:   "TXN001",
					Timestamp:       ts("2024-01-15T09:30:00Z"),
					CashierID:       "CASH001",
					Department:      "Grocery",
					ProductCategory: "Fresh Produce",
					Amount:          45.50,
					ItemsCount:      12,
					CustomerID:      "CUST042",
				},
			},
			expectedError: nil,
		},
		"ValidInput_NoCustomerColumn": {
			input: `
TXN002, 2024-01-15T14:05:00Z, CASH002, Electronics, Audio, 199.99, 1
`,
			expectedData: []models.PurchaseTransaction{
				{
					TransactionID:   "TXN002",
					Timestamp:       ts("2024-01-15T14:05:00Z"),
					CashierID:       "CASH002",
					Department:      "Electronics",
					ProductCategory: "Audio",
					Amount:          199.99,
					ItemsCount:      1,
				},
			},
			expectedError: nil,
		},
		"ValidInput_HeaderAndComments": {
			input: `
# exported 2024-01-16
transaction_id,timestamp,cashier_id,department,product_category,amount,items_count,customer_id
TXN003, 2024-01-15T16:45:00Z, CASH001, Bakery, Bread, 8.20, 3,
`,
			expectedData: []models.PurchaseTransaction{
				{
					TransactionID:   "TXN003",
					Timestamp:       ts("2024-01-15T16:45:00Z"),
					CashierID:       "CASH001",
					Department:      "Bakery",
					ProductCategory: "Bread",
					Amount:          8.20,
					ItemsCount:      3,
				},
			},
			expectedError: nil,
		},
		"ValidInput_TimestampWithoutZone": {
			input: `
TXN004, 2024-01-15T11:00:00, CASH003, Grocery, Dairy, 12.00, 4
`,
			expectedData: []models.PurchaseTransaction{
				{
					TransactionID:   "TXN004",
					Timestamp:       time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
					CashierID:       "CASH003",
					Department:      "Grocery",
					ProductCategory: "Dairy",
					Amount:          12.00,
					ItemsCount:      4,
				},
			},
			expectedError: nil,
		},
		"Invalid_FieldCount": {
			input: `
TXN005, 2024-01-15T11:00:00Z, CASH001
`,
			expectedError: customerrors.ErrInvalidFieldCount,
		},
		"Invalid_Timestamp": {
			input: `
TXN006, 15/01/2024 11:00, CASH001, Grocery, Dairy, 12.00, 4
`,
			expectedError: customerrors.ErrInvalidTimestamp,
		},
		"Invalid_Amount": {
			input: `
TXN007, 2024-01-15T11:00:00Z, CASH001, Grocery, Dairy, twelve, 4
`,
			expectedError: customerrors.ErrInvalidAmount,
		},
		"Invalid_NegativeAmount": {
			input: `
TXN008, 2024-01-15T11:00:00Z, CASH001, Grocery, Dairy, -12.00, 4
`,
			expectedError: customerrors.ErrNegativeAmount,
		},
		"Invalid_ItemsCount": {
			input: `
TXN009, 2024-01-15T11:00:00Z, CASH001, Grocery, Dairy, 12.00, four
`,
			expectedError: customerrors.ErrInvalidItemsCount,
		},
		"Invalid_NegativeItemsCount": {
			input: `
TXN010, 2024-01-15T11:00:00Z, CASH001, Grocery, Dairy, 12.00, -4
`,
			expectedError: customerrors.ErrNegativeItemsCount,
		},
		"Empty_Input": {
			input:         ``,
			expectedData:  nil,
			expectedError: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := strings.NewReader(strings.TrimSpace(tt.input))
			got, err := parser.Parse(r)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("Parse() error = %v, expectedError %v", err, tt.expectedError)
				}
				var parseErr *customerrors.ParseError
				assert.True(t, errors.As(err, &parseErr), "error should be a *ParseError")
				return
			}

			if err != nil {
				t.Errorf("Parse() unexpected error = %v", err)
				return
			}

			assert.Equal(t, tt.expectedData, got, fmt.Sprintf("Parse() = %v, want %v", got, tt.expectedData))
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	transactions := []models.PurchaseTransaction{
		{
			TransactionID:   "TXN001",
			Timestamp:       time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			CashierID:       "CASH001",
			Department:      "Grocery",
			ProductCategory: "Fresh Produce",
			Amount:          45.5,
			ItemsCount:      12,
			CustomerID:      "CUST042",
		},
	}

	var sb strings.Builder
	err := parser.Write(&sb, transactions)
	assert.NoError(t, err)

	output := sb.String()
	assert.Contains(t, output, "transaction_id,timestamp,cashier_id,department,product_category,amount,items_count,customer_id")
	assert.Contains(t, output, "TXN001,2024-01-15T09:30:00Z,CASH001,Grocery,Fresh Produce,45.50,12,CUST042")

	parsed, err := parser.Parse(strings.NewReader(output))
	assert.NoError(t, err)
	assert.Equal(t, transactions, parsed)
}
