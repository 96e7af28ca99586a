package cases

import (
	"strings"
	"time"
)

// tsToken is the placeholder test authors put in Data_* cells to get a
// per-run unique value, e.g. "user{{ts}}@example.com".
const tsToken = "{{ts}}"

// Resolve expands dynamic placeholder tokens in a case input value at
// execution time. The timestamp token becomes the current UTC time as a
// compact 14-digit string, so repeated runs generate distinct identifiers.
// Values without tokens pass through unchanged; "" maps to "".
func Resolve(value string) string {
	if value == "" {
		return ""
	}
	if strings.Contains(value, tsToken) {
		value = strings.ReplaceAll(value, tsToken, time.Now().UTC().Format("20060102150405"))
	}
	return value
}
