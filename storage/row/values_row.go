package row

import (
	"fmt"
	"strings"

	"github.com/JanyW/sql-layer/types"
)

// ValuesRow is a synthetic row backed by a plain value slice. It is used both
// for rows materialized out of the page store and for the reusable skip rows
// built during a jump, so its fields stay settable after construction.
type ValuesRow struct {
	rowType *RowType
	values  []types.Value
	shares  int
}

var _ Row = (*ValuesRow)(nil)

// NewValuesRow allocates a row of rowType's arity with every field null.
func NewValuesRow(rowType *RowType) *ValuesRow {
	values := make([]types.Value, rowType.NFields())
	for i := range values {
		values[i] = types.NewNull(rowType.FieldType(i))
	}
	return &ValuesRow{rowType: rowType, values: values}
}

// NewValuesRowFromValues wraps the given values. len(values) must match the
// rowType arity.
func NewValuesRowFromValues(rowType *RowType, values []types.Value) *ValuesRow {
	if len(values) != rowType.NFields() {
		panic(fmt.Sprintf("row arity %d does not match %s", len(values), rowType))
	}
	copied := make([]types.Value, len(values))
	copy(copied, values)
	return &ValuesRow{rowType: rowType, values: copied}
}

func (r *ValuesRow) RowType() *RowType { return r.rowType }

func (r *ValuesRow) Value(position int) types.Value {
	return r.values[position]
}

// SetValue overwrites one field in place. Only skip-row maintenance uses
// this; rows already handed to a consumer are treated as immutable.
func (r *ValuesRow) SetValue(position int, v types.Value) {
	r.values[position] = v
}

func (r *ValuesRow) Share()         { r.shares++ }
func (r *ValuesRow) Release()       { r.shares-- }
func (r *ValuesRow) IsShared() bool { return r.shares > 0 }

func (r *ValuesRow) String() string {
	fields := make([]string, len(r.values))
	for i, v := range r.values {
		fields[i] = v.String()
	}
	return "(" + strings.Join(fields, ", ") + ")"
}
