package types

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// A Value is a view over SQL data stored in some materialized state. All
// values have a type and comparison functions, and implement other
// type-specific functionality.
type Value struct {
	valueType TypeID
	isNull    bool
	integer   *int32
	boolean   *bool
	varchar   *string
	float     *float32
}

func NewInteger(value int32) Value {
	return Value{Integer, false, &value, nil, nil, nil}
}

func NewFloat(value float32) Value {
	return Value{Float, false, nil, nil, nil, &value}
}

func NewBoolean(value bool) Value {
	return Value{Boolean, false, nil, &value, nil, nil}
}

func NewVarchar(value string) Value {
	return Value{Varchar, false, nil, nil, &value, nil}
}

// NewNull makes a null value of the given type. Nulls order before every
// non-null value, which is what lets a null-filled seek key mean "reposition
// to the logical minimum".
func NewNull(valueType TypeID) Value {
	return Value{valueType: valueType, isNull: true}
}

func (v Value) ValueType() TypeID { return v.valueType }

func (v Value) IsNull() bool { return v.isNull }

func (v *Value) SetNull() { v.isNull = true }

// Compare returns -1, 0 or +1 for the natural ascending order of v against
// right. Both values must share a type. Nulls compare equal to each other and
// less than any non-null value.
func (v Value) Compare(right Value) int {
	if v.valueType != right.valueType {
		panic(fmt.Sprintf("comparison across value types: %v vs %v", v.valueType, right.valueType))
	}
	if v.IsNull() && right.IsNull() {
		return 0
	}
	if v.IsNull() {
		return -1
	}
	if right.IsNull() {
		return 1
	}

	switch v.valueType {
	case Integer:
		return compareOrdered(*v.integer, *right.integer)
	case Float:
		return compareOrdered(*v.float, *right.float)
	case Varchar:
		return compareOrdered(*v.varchar, *right.varchar)
	case Boolean:
		l, r := boolToInt(*v.boolean), boolToInt(*right.boolean)
		return compareOrdered(l, r)
	}
	panic("illegal valueType is passed!")
}

func (v Value) CompareEquals(right Value) bool {
	return v.Compare(right) == 0
}

func (v Value) CompareNotEquals(right Value) bool {
	return v.Compare(right) != 0
}

func (v Value) CompareLessThan(right Value) bool {
	return v.Compare(right) < 0
}

func (v Value) CompareLessThanOrEqual(right Value) bool {
	return v.Compare(right) <= 0
}

func (v Value) CompareGreaterThan(right Value) bool {
	return v.Compare(right) > 0
}

func (v Value) CompareGreaterThanOrEqual(right Value) bool {
	return v.Compare(right) >= 0
}

func compareOrdered[T int32 | float32 | string | int](l, r T) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Serialize encodes the value as a null flag followed by the payload.
// Varchar payloads carry a 2-byte length prefix.
func (v Value) Serialize() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, v.isNull)
	if v.isNull {
		return buf.Bytes()
	}
	switch v.valueType {
	case Integer:
		binary.Write(buf, binary.LittleEndian, v.ToInteger())
	case Float:
		binary.Write(buf, binary.LittleEndian, v.ToFloat())
	case Varchar:
		binary.Write(buf, binary.LittleEndian, uint16(len(v.ToVarchar())))
		buf.WriteString(v.ToVarchar())
	case Boolean:
		binary.Write(buf, binary.LittleEndian, v.ToBoolean())
	default:
		panic("not implemented")
	}
	return buf.Bytes()
}

// NewValueFromBytes is the inverse of Serialize. It returns the decoded value
// and the number of bytes consumed.
func NewValueFromBytes(data []byte, valueType TypeID) (Value, uint32) {
	isNull := data[0] != 0
	if isNull {
		return NewNull(valueType), 1
	}
	switch valueType {
	case Integer:
		v := int32(binary.LittleEndian.Uint32(data[1:5]))
		return NewInteger(v), 5
	case Float:
		bits := binary.LittleEndian.Uint32(data[1:5])
		return NewFloat(math.Float32frombits(bits)), 5
	case Varchar:
		length := binary.LittleEndian.Uint16(data[1:3])
		return NewVarchar(string(data[3 : 3+length])), 3 + uint32(length)
	case Boolean:
		return NewBoolean(data[1] != 0), 2
	}
	panic(fmt.Sprintf("%v is illegal", valueType))
}

// if you use these to get a column value, a NULL check is needed in general
func (v Value) ToInteger() int32 { return *v.integer }

func (v Value) ToFloat() float32 { return *v.float }

func (v Value) ToVarchar() string { return *v.varchar }

func (v Value) ToBoolean() bool { return *v.boolean }

func (v Value) String() string {
	if v.isNull {
		return "NULL"
	}
	switch v.valueType {
	case Integer:
		return fmt.Sprintf("%d", *v.integer)
	case Float:
		return fmt.Sprintf("%g", *v.float)
	case Varchar:
		return *v.varchar
	case Boolean:
		return fmt.Sprintf("%t", *v.boolean)
	}
	return "invalid"
}
