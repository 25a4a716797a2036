package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegroup(t *testing.T) {
	spec := RegroupSpec{ParentKey: "id", ParentColumns: []string{"name"}}

	t.Run("groups by parent in order of first appearance", func(t *testing.T) {
		rows := []Row{
			{"id": "b", "name": "B", "child.id": "b1"},
			{"id": "a", "name": "A", "child.id": "a1"},
			{"id": "b", "name": "B", "child.id": "b2"},
		}

		groups, err := Regroup(rows, spec)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "b", groups[0].ParentID)
		assert.Len(t, groups[0].Rows, 2)
		assert.Equal(t, "a", groups[1].ParentID)
		assert.Equal(t, "B", groups[0].Parent().Str("name"))
	})

	t.Run("rejects groups whose parent columns disagree", func(t *testing.T) {
		rows := []Row{
			{"id": "a", "name": "A"},
			{"id": "a", "name": "renamed"},
		}

		_, err := Regroup(rows, spec)

		assert.ErrorIs(t, err, ErrInconsistentParent)
	})

	t.Run("no rows", func(t *testing.T) {
		groups, err := Regroup(nil, spec)

		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestGroup_Children(t *testing.T) {
	g := Group{ParentID: "p", Rows: []Row{
		{"id": "p", "inv.id": "i1", "inv.n": "1", "conf.id": "c1"},
		{"id": "p", "inv.id": "i1", "inv.n": "1", "conf.id": "c2"},
		{"id": "p", "inv.id": nil, "conf.id": "c3"},
		{"id": "p", "inv.id": "i2", "inv.n": "2"},
	}}

	invoices := g.Children("inv", "id")
	confirmations := g.Children("conf", "id")

	require.Len(t, invoices, 2)
	assert.Equal(t, Row{"id": "i1", "n": "1"}, invoices[0])
	assert.Equal(t, "i2", invoices[1].Str("id"))
	assert.Len(t, confirmations, 3)
}

func TestRowAccessors(t *testing.T) {
	created := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	r := Row{
		"s":       "text",
		"n":       nil,
		"amount":  "12.50",
		"float":   1.5,
		"int":     3,
		"bad":     "x",
		"created": created.Format(time.RFC3339Nano),
		"when":    created,
	}

	assert.True(t, r.Has("s"))
	assert.False(t, r.Has("n"))
	assert.False(t, r.Has("missing"))
	assert.Equal(t, "", r.Str("n"))
	assert.Equal(t, "3", r.Str("int"))
	assert.True(t, decimal.RequireFromString("12.50").Equal(r.Decimal("amount")))
	assert.True(t, decimal.NewFromFloat(1.5).Equal(r.Decimal("float")))
	assert.True(t, decimal.NewFromInt(3).Equal(r.Decimal("int")))
	assert.True(t, r.Decimal("bad").IsZero())
	assert.True(t, created.Equal(r.Time("created")))
	assert.True(t, created.Equal(r.Time("when")))
	assert.True(t, r.Time("bad").IsZero())

	clone := r.Clone()
	clone["s"] = "changed"
	assert.Equal(t, "text", r.Str("s"))
}
