// Package reconcile turns flattened, outer-joined result rows back into
// parent/children graphs.
//
// A Row holds the parent's own columns under their plain names and every joined
// child's columns under "<alias>.<column>". A left-outer join with no match
// yields a row whose child columns are all nil or absent.
package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Row map[string]any

// Col builds the aliased column name for a joined child.
func Col(alias, column string) string {
	return alias + "." + column
}

// Has reports whether the column carries a non-nil value.
func (r Row) Has(column string) bool {
	v, ok := r[column]
	return ok && v != nil
}

// Str returns the column as a string, or "" when absent.
func (r Row) Str(column string) string {
	switch v := r[column].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Decimal parses numeric or textual column values. Absent or unparsable values are zero.
func (r Row) Decimal(column string) decimal.Decimal {
	switch v := r[column].(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// Time parses RFC3339 column values. Absent or unparsable values are the zero time.
func (r Row) Time(column string) time.Time {
	switch v := r[column].(type) {
	case time.Time:
		return v
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}
		}
		return t
	default:
		return time.Time{}
	}
}

// Alias extracts one joined child's column group with the prefix stripped.
func (r Row) Alias(alias string) Row {
	prefix := alias + "."
	out := Row{}
	for k, v := range r {
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
		}
	}
	return out
}

// Clone returns a shallow copy.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
