package row

import (
	"fmt"
	"strings"

	"github.com/JanyW/sql-layer/types"
)

// RowType is the immutable shape of a row: a name for diagnostics and the
// ordered field types. RowTypes are shared descriptors; two rows are
// compatible only when they carry the identical *RowType.
type RowType struct {
	name       string
	fieldTypes []types.TypeID
}

func NewRowType(name string, fieldTypes []types.TypeID) *RowType {
	copied := make([]types.TypeID, len(fieldTypes))
	copy(copied, fieldTypes)
	return &RowType{name: name, fieldTypes: copied}
}

func (rt *RowType) Name() string { return rt.name }

func (rt *RowType) NFields() int { return len(rt.fieldTypes) }

func (rt *RowType) FieldType(position int) types.TypeID {
	return rt.fieldTypes[position]
}

func (rt *RowType) String() string {
	typeNames := make([]string, len(rt.fieldTypes))
	for i, t := range rt.fieldTypes {
		typeNames[i] = t.String()
	}
	return fmt.Sprintf("%s(%s)", rt.name, strings.Join(typeNames, ", "))
}
