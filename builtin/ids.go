package builtin

import "fmt"

// TypeID identifies one of the 25 OPC UA built-in types carried by a
// Variant. The valid range is 1..25; 0 denotes a null Variant.
type TypeID int

// Built-in type identifiers, OPC UA Part 6 section 5.1.2.
const (
	TypeNull            TypeID = 0
	TypeBoolean         TypeID = 1
	TypeSByte           TypeID = 2
	TypeByte            TypeID = 3
	TypeInt16           TypeID = 4
	TypeUInt16          TypeID = 5
	TypeInt32           TypeID = 6
	TypeUInt32          TypeID = 7
	TypeInt64           TypeID = 8
	TypeUInt64          TypeID = 9
	TypeFloat           TypeID = 10
	TypeDouble          TypeID = 11
	TypeString          TypeID = 12
	TypeDateTime        TypeID = 13
	TypeGuid            TypeID = 14
	TypeByteString      TypeID = 15
	TypeXmlElement      TypeID = 16
	TypeNodeId          TypeID = 17
	TypeExpandedNodeId  TypeID = 18
	TypeStatusCode      TypeID = 19
	TypeQualifiedName   TypeID = 20
	TypeLocalizedText   TypeID = 21
	TypeExtensionObject TypeID = 22
	TypeDataValue       TypeID = 23
	TypeVariant         TypeID = 24
	TypeDiagnosticInfo  TypeID = 25

	minTypeID = TypeBoolean
	maxTypeID = TypeDiagnosticInfo
)

// Valid reports whether id is a legal built-in type id, i.e. in 1..25 or 0
// (null).
func (id TypeID) Valid() bool {
	return id == TypeNull || (id >= minTypeID && id <= maxTypeID)
}

var typeNames = map[TypeID]string{
	TypeNull:            "Null",
	TypeBoolean:         "Boolean",
	TypeSByte:           "SByte",
	TypeByte:            "Byte",
	TypeInt16:           "Int16",
	TypeUInt16:          "UInt16",
	TypeInt32:           "Int32",
	TypeUInt32:          "UInt32",
	TypeInt64:           "Int64",
	TypeUInt64:          "UInt64",
	TypeFloat:           "Float",
	TypeDouble:          "Double",
	TypeString:          "String",
	TypeDateTime:        "DateTime",
	TypeGuid:            "Guid",
	TypeByteString:      "ByteString",
	TypeXmlElement:      "XmlElement",
	TypeNodeId:          "NodeId",
	TypeExpandedNodeId:  "ExpandedNodeId",
	TypeStatusCode:      "StatusCode",
	TypeQualifiedName:   "QualifiedName",
	TypeLocalizedText:   "LocalizedText",
	TypeExtensionObject: "ExtensionObject",
	TypeDataValue:       "DataValue",
	TypeVariant:         "Variant",
	TypeDiagnosticInfo:  "DiagnosticInfo",
}

// String returns the type's OPC UA name, or a numeric fallback for an
// invalid id.
func (id TypeID) String() string {
	if name, ok := typeNames[id]; ok {
		return name
	}
	return fmt.Sprintf("TypeID(%d)", int(id))
}
