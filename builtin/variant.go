package builtin

// VariantShape distinguishes the three payload shapes a Variant can carry:
// a single scalar, a flat one-dimensional array, or a multi-dimensional
// matrix (OPC UA Part 6).
type VariantShape int

const (
	// ShapeNull marks a null Variant (TypeID 0, no payload).
	ShapeNull VariantShape = iota
	ShapeScalar
	ShapeArray
	ShapeMatrix
)

// Variant is a discriminated value: a built-in TypeID plus a payload of the
// shape described by Shape. Exactly one of Scalar/Array/Matrix is
// meaningful, selected by Shape; TypeID == 0 iff Shape == ShapeNull.
type Variant struct {
	Type  TypeID
	Shape VariantShape

	Scalar any
	Array  []any
	Matrix *Matrix
}

// NullVariant returns the null Variant.
func NullVariant() Variant {
	return Variant{Type: TypeNull, Shape: ShapeNull}
}

// ScalarVariant wraps a single value of built-in type t.
func ScalarVariant(t TypeID, v any) Variant {
	return Variant{Type: t, Shape: ShapeScalar, Scalar: v}
}

// ArrayVariant wraps a one-dimensional array of built-in type t.
func ArrayVariant(t TypeID, elems []any) Variant {
	return Variant{Type: t, Shape: ShapeArray, Array: elems}
}

// MatrixVariant wraps a multi-dimensional matrix.
func MatrixVariant(m Matrix) Variant {
	return Variant{Type: m.ElementType, Shape: ShapeMatrix, Matrix: &m}
}

// Matrix is a multi-dimensional array: Elements is the flat, row-major
// backing storage, and product(Dimensions) must equal len(Elements).
// Dimensions has at least one entry.
type Matrix struct {
	ElementType TypeID
	Dimensions  []uint32
	Elements    []any
}

// Product returns the product of m's dimensions, i.e. the expected element
// count.
func (m Matrix) Product() uint64 {
	var p uint64 = 1
	for _, d := range m.Dimensions {
		p *= uint64(d)
	}
	return p
}
