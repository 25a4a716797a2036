package reconcile

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrInconsistentParent = errors.New("rows of the same parent disagree on parent columns")

// RegroupSpec describes how rows identify their parent.
type RegroupSpec struct {
	// ParentKey is the parent identity column.
	ParentKey string
	// ParentColumns are compared across every row of a group. Joins repeat the
	// parent's columns verbatim, so a difference means the rows were not produced
	// by the same snapshot.
	ParentColumns []string
}

// Group is one parent with every row that carried it.
type Group struct {
	ParentID string
	Rows     []Row
}

// Parent is the row the parent entity is materialized from.
func (g Group) Parent() Row {
	return g.Rows[0]
}

// Children collects the alias column group of every row, skipping rows whose
// child identity column is nil (no join match) and repeated identities produced
// by sibling joins.
func (g Group) Children(alias, idColumn string) []Row {
	seen := make(map[string]struct{}, len(g.Rows))
	var out []Row
	for _, row := range g.Rows {
		child := row.Alias(alias)
		if !child.Has(idColumn) {
			continue
		}
		id := child.Str(idColumn)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, child)
	}
	return out
}

// Regroup groups rows by parent identity in order of first appearance.
func Regroup(rows []Row, spec RegroupSpec) ([]Group, error) {
	index := make(map[string]int)
	var groups []Group
	for _, row := range rows {
		id := row.Str(spec.ParentKey)
		i, ok := index[id]
		if !ok {
			index[id] = len(groups)
			groups = append(groups, Group{ParentID: id, Rows: []Row{row}})
			continue
		}
		first := groups[i].Rows[0]
		for _, col := range spec.ParentColumns {
			if !reflect.DeepEqual(first[col], row[col]) {
				return nil, fmt.Errorf("%w: parent %s column %s", ErrInconsistentParent, id, col)
			}
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups, nil
}
