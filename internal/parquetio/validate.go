package parquetio

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

var requiredColumns = []string{"npi", "year", "hcpcs_code"}

// ValidateSchema checks that a file carries the identity columns of a
// service line.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]bool)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !columns[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("not a service-line snapshot: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}
