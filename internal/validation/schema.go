package validation

import (
	"github.com/kenh/donor-rfm/internal/types"
)

// CheckHeader verifies that every expected column is present in the header.
// Column order does not matter and extra columns are permitted; they are
// ignored downstream. Returns a *SchemaError naming every missing column.
func CheckHeader(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, name := range header {
		present[name] = struct{}{}
	}

	var missing []string
	for _, want := range types.ExpectedColumns {
		if _, ok := present[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing, Expected: types.ExpectedColumns}
	}
	return nil
}
