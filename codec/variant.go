package codec

import (
	"errors"
	"fmt"

	"github.com/opcua-json/opcuajson/builtin"
)

// Variant writes v per the Part 6 JSON mapping. A null Variant writes as JSON
// null. Otherwise, reversible mode writes {"Type":id,"Body":...,
// "Dimensions":[...]} (Dimensions present only for a matrix); a scalar
// or array is written with Body at the natural shape, and a matrix's
// Body is the row-major flattened element list alongside a separate
// Dimensions array. Non-reversible mode drops the "Type" tag and emits
// the value directly -- a scalar as itself, an array as a JSON array,
// and a matrix as properly nested JSON arrays matching its Dimensions,
// since a reader in that mode is assumed to already know the type from
// context.
func (e *Encoder) Variant(v builtin.Variant) error {
	switch v.Shape {
	case builtin.ShapeNull:
		return e.wrapTokenErr("Variant", e.tokens.ValueNull())
	case builtin.ShapeScalar:
		return e.variantScalarShape(v)
	case builtin.ShapeArray:
		return e.variantArrayShape(v)
	case builtin.ShapeMatrix:
		return e.variantMatrixShape(v)
	default:
		return newUnknownTypeError("Variant.Shape", fmt.Errorf("unrecognized shape %d", v.Shape))
	}
}

// VariantKeyed writes name:{...} or name:null.
func (e *Encoder) VariantKeyed(name string, v builtin.Variant) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Variant(v)
}

func (e *Encoder) variantScalarShape(v builtin.Variant) error {
	if !e.reversible {
		return e.encodeByType(v.Type, v.Scalar)
	}
	if err := e.checkDepth("Variant"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.Int32Keyed("Type", int32(v.Type)); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.Name("Body")); err != nil {
		return err
	}
	if err := e.encodeByType(v.Type, v.Scalar); err != nil {
		return err
	}
	return e.wrapTokenErr("Variant", e.tokens.EndObject())
}

func (e *Encoder) variantArrayShape(v builtin.Variant) error {
	if !e.reversible {
		return e.encodeFlatArray(v.Type, v.Array)
	}
	if err := e.checkDepth("Variant"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.Int32Keyed("Type", int32(v.Type)); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.Name("Body")); err != nil {
		return err
	}
	if err := e.encodeFlatArray(v.Type, v.Array); err != nil {
		return err
	}
	return e.wrapTokenErr("Variant", e.tokens.EndObject())
}

func (e *Encoder) variantMatrixShape(v builtin.Variant) error {
	m := v.Matrix
	if err := e.checkArrayLen("Variant.Matrix", len(m.Elements)); err != nil {
		return err
	}
	if uint64(len(m.Elements)) != m.Product() {
		return newInvalidStateError("Variant.Matrix", fmt.Errorf("element count %d does not match dimension product %d", len(m.Elements), m.Product()))
	}

	if !e.reversible {
		return e.encodeNestedMatrix(m.ElementType, m.Dimensions, m.Elements)
	}

	if err := e.checkDepth("Variant"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.BeginObject()); err != nil {
		return err
	}
	if err := e.Int32Keyed("Type", int32(m.ElementType)); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.Name("Body")); err != nil {
		return err
	}
	if err := e.encodeFlatArray(m.ElementType, m.Elements); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant", e.tokens.Name("Dimensions")); err != nil {
		return err
	}
	if err := e.writeUint32Array(m.Dimensions); err != nil {
		return err
	}
	return e.wrapTokenErr("Variant", e.tokens.EndObject())
}

// Matrix writes m outside any Variant wrapper: nested JSON arrays of
// the rank m.Dimensions describes, with no envelope and no Dimensions
// field, in both modes -- the shape is implicit in the nesting.
func (e *Encoder) Matrix(m builtin.Matrix) error {
	if err := e.checkArrayLen("Matrix", len(m.Elements)); err != nil {
		return err
	}
	if uint64(len(m.Elements)) != m.Product() {
		return newInvalidStateError("Matrix", fmt.Errorf("element count %d does not match dimension product %d", len(m.Elements), m.Product()))
	}
	return e.encodeNestedMatrix(m.ElementType, m.Dimensions, m.Elements)
}

// MatrixKeyed writes name:[[...]...].
func (e *Encoder) MatrixKeyed(name string, m builtin.Matrix) error {
	if err := e.wrapTokenErr(name, e.tokens.Name(name)); err != nil {
		return err
	}
	return e.Matrix(m)
}

func (e *Encoder) encodeFlatArray(t builtin.TypeID, elems []any) error {
	if err := e.checkArrayLen("Variant.Array", len(elems)); err != nil {
		return err
	}
	if err := e.checkDepth("Variant.Array"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant.Array", e.tokens.BeginArray()); err != nil {
		return err
	}
	for i, elem := range elems {
		if err := e.encodeByType(t, elem); err != nil {
			return &EncodingError{Kind: errKind(err), Where: fmt.Sprintf("Variant.Array[%d]", i), Err: err}
		}
	}
	return e.wrapTokenErr("Variant.Array", e.tokens.EndArray())
}

// encodeNestedMatrix recursively slices elems into Dimensions[0] groups,
// the way a row-major flat buffer unflattens into nested JSON arrays for
// non-reversible encoding.
func (e *Encoder) encodeNestedMatrix(t builtin.TypeID, dims []uint32, elems []any) error {
	if len(dims) == 1 {
		return e.encodeFlatArray(t, elems)
	}
	if err := e.checkDepth("Variant.Matrix"); err != nil {
		return err
	}
	if err := e.wrapTokenErr("Variant.Matrix", e.tokens.BeginArray()); err != nil {
		return err
	}
	rowSize := 1
	for _, d := range dims[1:] {
		rowSize *= int(d)
	}
	for i := 0; i < int(dims[0]); i++ {
		start := i * rowSize
		end := start + rowSize
		if err := e.encodeNestedMatrix(t, dims[1:], elems[start:end]); err != nil {
			return err
		}
	}
	return e.wrapTokenErr("Variant.Matrix", e.tokens.EndArray())
}

func errKind(err error) ErrorKind {
	var ee *EncodingError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindInvalidState
}

// encodeByType dispatches a bare Go value to the Encoder method matching
// its declared built-in TypeID, the single choke point Variant and
// Matrix both funnel through.
func (e *Encoder) encodeByType(t builtin.TypeID, v any) error {
	switch t {
	case builtin.TypeBoolean:
		b, ok := v.(bool)
		return e.typed("Boolean", ok, func() error { return e.Boolean(b) })
	case builtin.TypeSByte:
		n, ok := v.(int8)
		return e.typed("SByte", ok, func() error { return e.SByte(n) })
	case builtin.TypeByte:
		n, ok := v.(uint8)
		return e.typed("Byte", ok, func() error { return e.Byte(n) })
	case builtin.TypeInt16:
		n, ok := v.(int16)
		return e.typed("Int16", ok, func() error { return e.Int16(n) })
	case builtin.TypeUInt16:
		n, ok := v.(uint16)
		return e.typed("UInt16", ok, func() error { return e.UInt16(n) })
	case builtin.TypeInt32:
		n, ok := v.(int32)
		return e.typed("Int32", ok, func() error { return e.Int32(n) })
	case builtin.TypeUInt32:
		n, ok := v.(uint32)
		return e.typed("UInt32", ok, func() error { return e.UInt32(n) })
	case builtin.TypeInt64:
		n, ok := v.(int64)
		return e.typed("Int64", ok, func() error { return e.Int64(n) })
	case builtin.TypeUInt64:
		n, ok := v.(uint64)
		return e.typed("UInt64", ok, func() error { return e.UInt64(n) })
	case builtin.TypeFloat:
		n, ok := v.(float32)
		return e.typed("Float", ok, func() error { return e.Float(n) })
	case builtin.TypeDouble:
		n, ok := v.(float64)
		return e.typed("Double", ok, func() error { return e.Double(n) })
	case builtin.TypeString:
		s, ok := v.(string)
		return e.typed("String", ok, func() error { return e.String(s) })
	case builtin.TypeDateTime:
		dt, ok := v.(builtin.DateTime)
		return e.typed("DateTime", ok, func() error { return e.DateTime(dt) })
	case builtin.TypeGuid:
		g, ok := v.(builtin.Guid)
		return e.typed("Guid", ok, func() error { return e.Guid(g) })
	case builtin.TypeByteString:
		bs, ok := v.(builtin.ByteString)
		return e.typed("ByteString", ok, func() error { return e.ByteString(bs) })
	case builtin.TypeXmlElement:
		s, ok := v.(string)
		return e.typed("XmlElement", ok, func() error { return e.XmlElement(s) })
	case builtin.TypeNodeId:
		n, ok := v.(builtin.NodeId)
		return e.typed("NodeId", ok, func() error { return e.NodeId(n) })
	case builtin.TypeExpandedNodeId:
		n, ok := v.(builtin.ExpandedNodeId)
		return e.typed("ExpandedNodeId", ok, func() error { return e.ExpandedNodeId(n) })
	case builtin.TypeStatusCode:
		c, ok := v.(builtin.StatusCode)
		return e.typed("StatusCode", ok, func() error { return e.StatusCode(c) })
	case builtin.TypeQualifiedName:
		q, ok := v.(builtin.QualifiedName)
		return e.typed("QualifiedName", ok, func() error { return e.QualifiedName(q) })
	case builtin.TypeLocalizedText:
		lt, ok := v.(builtin.LocalizedText)
		return e.typed("LocalizedText", ok, func() error { return e.LocalizedText(lt) })
	case builtin.TypeExtensionObject:
		x, ok := v.(builtin.ExtensionObject)
		return e.typed("ExtensionObject", ok, func() error { return e.ExtensionObject(x) })
	case builtin.TypeDataValue:
		dv, ok := v.(builtin.DataValue)
		return e.typed("DataValue", ok, func() error { return e.DataValue(dv) })
	case builtin.TypeVariant:
		nested, ok := v.(builtin.Variant)
		return e.typed("Variant", ok, func() error { return e.Variant(nested) })
	case builtin.TypeDiagnosticInfo:
		di, ok := v.(builtin.DiagnosticInfo)
		return e.typed("DiagnosticInfo", ok, func() error { return e.DiagnosticInfo(di) })
	default:
		return newUnknownTypeError("Variant.Type", fmt.Errorf("unsupported built-in type id %d", t))
	}
}

func (e *Encoder) typed(where string, ok bool, write func() error) error {
	if !ok {
		return newInvalidStateError(where, fmt.Errorf("value does not match declared built-in type"))
	}
	return write()
}
