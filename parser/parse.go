package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fronzo556/Carrefour-Analysis/errors"
	"github.com/fronzo556/Carrefour-Analysis/metrics"
	"github.com/fronzo556/Carrefour-Analysis/models"
)

// timestampLayouts are the accepted ISO-8601 variants, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// csvHeader is the column order used for both reading and writing.
var csvHeader = []string{
	"transaction_id", "timestamp", "cashier_id", "department",
	"product_category", "amount", "items_count", "customer_id",
}

// Parse reads purchase transactions from CSV data.
// Expected columns: transaction_id, timestamp, cashier_id, department,
// product_category, amount, items_count, customer_id. The customer_id column
// may be empty or missing entirely. Lines starting with '#' and the header
// row are skipped. Timestamps must be ISO-8601; amount and items_count must
// be non-negative. Violations are reported as *errors.ParseError with the
// offending line and record attached, so nothing malformed ever reaches the
// calculators.
func Parse(r io.Reader) ([]models.PurchaseTransaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var transactions []models.PurchaseTransaction
	lineNum := 0

	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues("malformed_csv").Inc()
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		// Handle comments and the exporter's header row
		if len(record) == 0 || strings.HasPrefix(record[0], "#") {
			continue
		}
		if strings.TrimSpace(record[0]) == "transaction_id" {
			continue
		}

		if len(record) != 7 && len(record) != 8 {
			return nil, parseFailure(lineNum, record, "field_count", errors.ErrInvalidFieldCount)
		}

		tx := models.PurchaseTransaction{
			TransactionID:   strings.TrimSpace(record[0]),
			CashierID:       strings.TrimSpace(record[2]),
			Department:      strings.TrimSpace(record[3]),
			ProductCategory: strings.TrimSpace(record[4]),
		}

		tx.Timestamp, err = parseTimestamp(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, parseFailure(lineNum, record, "timestamp",
				fmt.Errorf("%w: %v", errors.ErrInvalidTimestamp, err))
		}

		tx.Amount, err = strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		if err != nil {
			return nil, parseFailure(lineNum, record, "amount",
				fmt.Errorf("%w: %v", errors.ErrInvalidAmount, err))
		}
		if tx.Amount < 0 {
			return nil, parseFailure(lineNum, record, "negative_amount", errors.ErrNegativeAmount)
		}

		tx.ItemsCount, err = strconv.Atoi(strings.TrimSpace(record[6]))
		if err != nil {
			return nil, parseFailure(lineNum, record, "items_count",
				fmt.Errorf("%w: %v", errors.ErrInvalidItemsCount, err))
		}
		if tx.ItemsCount < 0 {
			return nil, parseFailure(lineNum, record, "negative_items_count", errors.ErrNegativeItemsCount)
		}

		if len(record) == 8 {
			tx.CustomerID = strings.TrimSpace(record[7])
		}

		transactions = append(transactions, tx)
		metrics.ParserRecordsTotal.Inc()
	}

	return transactions, nil
}

// Write serializes transactions back to CSV, header row included. Timestamps
// are written as RFC3339 so the output parses back with Parse.
func Write(w io.Writer, transactions []models.PurchaseTransaction) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range transactions {
		record := []string{
			tx.TransactionID,
			tx.Timestamp.Format(time.RFC3339),
			tx.CashierID,
			tx.Department,
			tx.ProductCategory,
			strconv.FormatFloat(tx.Amount, 'f', 2, 64),
			strconv.Itoa(tx.ItemsCount),
			tx.CustomerID,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseFailure(line int, record []string, errType string, err error) error {
	metrics.ParserErrorsTotal.WithLabelValues(errType).Inc()
	return &errors.ParseError{
		Line:   line,
		Record: record,
		Err:    err,
	}
}
