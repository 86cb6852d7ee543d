package types

type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Integer
	Float
	Varchar
)

func (t TypeID) String() string {
	switch t {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Varchar:
		return "varchar"
	}
	return "invalid"
}

// Size returns the fixed encoded size of the payload in bytes, 0 for
// variable-length types.
func (t TypeID) Size() uint32 {
	switch t {
	case Boolean:
		return 1
	case Integer:
		return 4
	case Float:
		return 4
	}
	return 0
}
