package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rowIDs(tb *Table) []string {
	ids := make([]string, 0, tb.Len())
	for _, r := range tb.Rows {
		ids = append(ids, r["id"])
	}
	return ids
}

func TestSortByDescOrdersPresentKeys(t *testing.T) {
	tb := New("id", "v")
	tb.Append(Row{"id": "a", "v": "0.5"})
	tb.Append(Row{"id": "b", "v": "0.9"})
	tb.Append(Row{"id": "c", "v": "0.7"})

	out := tb.SortByDesc("v")
	assert.Equal(t, []string{"b", "c", "a"}, rowIDs(out))
	// Input untouched.
	assert.Equal(t, []string{"a", "b", "c"}, rowIDs(tb))
}

func TestSortByDescStableOnTiesAndUnset(t *testing.T) {
	tb := New("id", "v")
	tb.Append(Row{"id": "u1", "v": ""})
	tb.Append(Row{"id": "a", "v": "0.7"})
	tb.Append(Row{"id": "u2"})
	tb.Append(Row{"id": "b", "v": "0.7"})
	tb.Append(Row{"id": "c", "v": "0.9"})

	out := tb.SortByDesc("v")
	// Unset keys sort after all set keys; ties and unset keep input order.
	assert.Equal(t, []string{"c", "a", "b", "u1", "u2"}, rowIDs(out))
}
