package entity

// DataType identifies the element kind stored in a Field.
// The numeric values match the server-side enum.
type DataType int32

const (
	DataTypeNone         DataType = 0
	DataTypeBool         DataType = 1
	DataTypeInt8         DataType = 2
	DataTypeInt16        DataType = 3
	DataTypeInt32        DataType = 4
	DataTypeInt64        DataType = 5
	DataTypeFloat        DataType = 10
	DataTypeDouble       DataType = 11
	DataTypeString       DataType = 20
	DataTypeVarChar      DataType = 21
	DataTypeBinaryVector DataType = 100
	DataTypeFloatVector  DataType = 101
)

// String returns the string representation of the DataType.
func (t DataType) String() string {
	switch t {
	case DataTypeNone:
		return "None"
	case DataTypeBool:
		return "Bool"
	case DataTypeInt8:
		return "Int8"
	case DataTypeInt16:
		return "Int16"
	case DataTypeInt32:
		return "Int32"
	case DataTypeInt64:
		return "Int64"
	case DataTypeFloat:
		return "Float"
	case DataTypeDouble:
		return "Double"
	case DataTypeString:
		return "String"
	case DataTypeVarChar:
		return "VarChar"
	case DataTypeBinaryVector:
		return "BinaryVector"
	case DataTypeFloatVector:
		return "FloatVector"
	default:
		return "Unknown"
	}
}

// IsVector reports whether elements of this kind are fixed-dimension vectors.
func (t DataType) IsVector() bool {
	return t == DataTypeBinaryVector || t == DataTypeFloatVector
}
