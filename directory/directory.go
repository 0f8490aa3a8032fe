// Package directory holds the employee registry mapping cashier ids to
// display names. It replaces the original process-wide lookup table: callers
// own an instance and pass it by reference into the performance calculator.
package directory

import "fmt"

// Directory is a mutable id-to-name registry. It is populated before report
// generation and only read afterwards; concurrent report runs over the same
// instance must treat it as a read-only snapshot.
type Directory struct {
	names map[string]string
}

// New returns an empty directory.
func New() *Directory {
	return &Directory{names: make(map[string]string)}
}

// Register adds or replaces an employee entry. Last write wins; ids are not
// validated.
func (d *Directory) Register(employeeID, displayName string) {
	d.names[employeeID] = displayName
}

// Resolve returns the registered display name, or a placeholder embedding
// the raw id when the employee is unknown. It never fails.
func (d *Directory) Resolve(employeeID string) string {
	if name, ok := d.names[employeeID]; ok {
		return name
	}
	return fmt.Sprintf("Employee %s", employeeID)
}

// Len reports the number of registered employees.
func (d *Directory) Len() int {
	return len(d.names)
}
