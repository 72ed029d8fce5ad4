package table

import (
	"encoding/json"
	"reflect"
	"sort"
	"strings"
	"time"
)

// normalize converts a Go value into its JSON-decoded equivalent so it can be
// compared with stored row values
func normalize(v any) any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func matchesFilters(row Row, filters []Filter) bool {
	for _, f := range filters {
		want := normalize(f.Value)
		got, ok := row[f.Column]
		if !ok {
			got = nil
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func matchesSubstring(row Row, m *Match) bool {
	if m == nil {
		return true
	}
	value, ok := row[m.Column].(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(m.Substring))
}

// sortRows orders rows stably; NULLs sort last in both directions
func sortRows(rows []Row, orders []Order) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		for _, o := range orders {
			a, b := rows[i][o.Column], rows[j][o.Column]
			switch {
			case a == nil && b == nil:
				continue
			case a == nil:
				return false
			case b == nil:
				return true
			}
			c := compareValues(a, b)
			if c == 0 {
				continue
			}
			if o.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			at, aErr := time.Parse(time.RFC3339Nano, av)
			bt, bErr := time.Parse(time.RFC3339Nano, bv)
			if aErr == nil && bErr == nil {
				return at.Compare(bt)
			}
			return strings.Compare(av, bv)
		}
	}
	return 0
}
