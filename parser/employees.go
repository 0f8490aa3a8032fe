package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fronzo556/Carrefour-Analysis/directory"
	"github.com/fronzo556/Carrefour-Analysis/errors"
)

// ParseEmployees reads an employee roster CSV (employee_id,display_name) and
// registers each entry in the directory. Later rows overwrite earlier ones
// for the same id. Header and '#' comment lines are skipped. Returns the
// number of rows registered.
func ParseEmployees(r io.Reader, dir *directory.Directory) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	count := 0
	lineNum := 0
	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		if len(record) == 0 || strings.HasPrefix(record[0], "#") {
			continue
		}
		if strings.TrimSpace(record[0]) == "employee_id" {
			continue
		}

		if len(record) != 2 {
			return count, &errors.ParseError{
				Line:   lineNum,
				Record: record,
				Err:    errors.ErrInvalidFieldCount,
			}
		}

		dir.Register(strings.TrimSpace(record[0]), strings.TrimSpace(record[1]))
		count++
	}

	return count, nil
}
