package testing_util

import (
	"github.com/JanyW/sql-layer/storage/row"
	"github.com/JanyW/sql-layer/types"
)

// GetValue wraps a plain Go scalar as a types.Value. A nil argument becomes
// a null integer; pass *types.Value to control the null's type explicitly.
func GetValue(data interface{}) (value types.Value) {
	switch v := data.(type) {
	case nil:
		value = types.NewNull(types.Integer)
	case int:
		value = types.NewInteger(int32(v))
	case int32:
		value = types.NewInteger(v)
	case float32:
		value = types.NewFloat(v)
	case string:
		value = types.NewVarchar(v)
	case bool:
		value = types.NewBoolean(v)
	case *types.Value:
		return *v
	case types.Value:
		return v
	}
	return
}

// GetValueType maps a plain Go scalar to its TypeID.
func GetValueType(data interface{}) types.TypeID {
	switch v := data.(type) {
	case int, int32:
		return types.Integer
	case float32:
		return types.Float
	case string:
		return types.Varchar
	case bool:
		return types.Boolean
	case *types.Value:
		return v.ValueType()
	}
	panic("not implemented")
}

// MakeRow builds a ValuesRow over rowType from plain scalars. Use
// types.NewNull values for null fields of non-integer types.
func MakeRow(rowType *row.RowType, fields ...interface{}) *row.ValuesRow {
	values := make([]types.Value, len(fields))
	for i, f := range fields {
		if f == nil {
			values[i] = types.NewNull(rowType.FieldType(i))
			continue
		}
		values[i] = GetValue(f)
	}
	return row.NewValuesRowFromValues(rowType, values)
}
