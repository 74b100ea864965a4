package types

import "strconv"

// Type represents an `fn` value type.  Types whose width (or element type) is
// left unspecified are wildcards: they are equal to every type of the same
// base kind regardless of its width.
type Type interface {
	// Returns whether this type is equal to the other type.  This should only
	// be called through Equals which guarantees that other is not nil.
	equals(other Type) bool

	// Returns the representative string for this type.
	Repr() string
}

// Equals returns whether two types are equal.  Wildcard widths and element
// types compare equal to anything of the same base kind, and the relation is
// symmetric.  Two nil types are equal: nil is the absence of a type.
func Equals(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equals(b)
}

// Repr returns the representative string for a possibly nil type.
func Repr(t Type) string {
	if t == nil {
		return "none"
	}

	return t.Repr()
}

// -----------------------------------------------------------------------------

// The valid integral widths.  A width of zero is a wildcard.
var intWidths = []int{8, 16, 32, 64, 128}

// The valid floating-point widths.  A width of zero is a wildcard.
var floatWidths = []int{16, 32, 64, 128}

// widthsEqual compares two widths where zero is a wildcard.
func widthsEqual(a, b int) bool {
	return a == 0 || b == 0 || a == b
}

// reprWidth appends a width onto a base type name when it is specified.
func reprWidth(base string, width int) string {
	if width == 0 {
		return base
	}

	return base + strconv.Itoa(width)
}

// IntType is a signed integer type.
type IntType struct {
	Width int
}

func (it IntType) equals(other Type) bool {
	if oit, ok := other.(IntType); ok {
		return widthsEqual(it.Width, oit.Width)
	}

	return false
}

func (it IntType) Repr() string {
	return reprWidth("int", it.Width)
}

// UintType is an unsigned integer type.
type UintType struct {
	Width int
}

func (ut UintType) equals(other Type) bool {
	if out, ok := other.(UintType); ok {
		return widthsEqual(ut.Width, out.Width)
	}

	return false
}

func (ut UintType) Repr() string {
	return reprWidth("uint", ut.Width)
}

// FloatType is a floating-point type.
type FloatType struct {
	Width int
}

func (ft FloatType) equals(other Type) bool {
	if oft, ok := other.(FloatType); ok {
		return widthsEqual(ft.Width, oft.Width)
	}

	return false
}

func (ft FloatType) Repr() string {
	return reprWidth("float", ft.Width)
}

// BoolType is the boolean type.
type BoolType struct{}

func (BoolType) equals(other Type) bool {
	_, ok := other.(BoolType)
	return ok
}

func (BoolType) Repr() string {
	return "bool"
}

// ArrayType is a homogeneous array type.  A nil element type is a wildcard.
type ArrayType struct {
	ElemType Type
}

func (at ArrayType) equals(other Type) bool {
	if oat, ok := other.(ArrayType); ok {
		return at.ElemType == nil || oat.ElemType == nil || at.ElemType.equals(oat.ElemType)
	}

	return false
}

func (at ArrayType) Repr() string {
	if at.ElemType == nil {
		return "array"
	}

	return "array<" + at.ElemType.Repr() + ">"
}

// -----------------------------------------------------------------------------

// Commonly used types.
var (
	Int32 Type = IntType{Width: 32}
	Bool  Type = BoolType{}
)

// IsWildcard returns whether the type has any unspecified width or element.
func IsWildcard(t Type) bool {
	switch v := t.(type) {
	case IntType:
		return v.Width == 0
	case UintType:
		return v.Width == 0
	case FloatType:
		return v.Width == 0
	case ArrayType:
		return v.ElemType == nil || IsWildcard(v.ElemType)
	default:
		return false
	}
}

// FromName converts a type name used in a type annotation into a type: eg.
// `int32`, `uint`, `float64`, `bool` or `array`.  The bare names `int`, `uint`,
// `float` and `array` produce wildcards.  It returns false if the name does not
// name a type.
func FromName(name string) (Type, bool) {
	switch name {
	case "bool":
		return BoolType{}, true
	case "array":
		return ArrayType{}, true
	}

	for _, base := range []string{"uint", "int", "float"} {
		if len(name) < len(base) || name[:len(base)] != base {
			continue
		}

		width := 0
		if suffix := name[len(base):]; suffix != "" {
			w, err := strconv.Atoi(suffix)
			if err != nil || suffix[0] == '0' || suffix[0] == '+' || suffix[0] == '-' {
				return nil, false
			}

			width = w
		}

		switch base {
		case "int":
			if validWidth(width, intWidths) {
				return IntType{Width: width}, true
			}
		case "uint":
			if validWidth(width, intWidths) {
				return UintType{Width: width}, true
			}
		case "float":
			if validWidth(width, floatWidths) {
				return FloatType{Width: width}, true
			}
		}

		return nil, false
	}

	return nil, false
}

// validWidth returns whether width is zero or one of the given widths.
func validWidth(width int, widths []int) bool {
	if width == 0 {
		return true
	}

	for _, w := range widths {
		if w == width {
			return true
		}
	}

	return false
}
