package stub

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind discriminates the node variants.
type Kind int

const (
	KindModule Kind = iota
	KindClass
	KindEnum
	KindEnumValue
	KindFunction
	KindMethod
	KindConstructor
	KindProperty
	KindConstant
)

// IsRoutine reports whether nodes of this kind carry signatures.
func (k Kind) IsRoutine() bool {
	switch k {
	case KindFunction, KindMethod, KindConstructor:
		return true
	default:
		return false
	}
}

// IsClassLike reports whether nodes of this kind render as a class body.
func (k Kind) IsClassLike() bool {
	return k == KindClass || k == KindEnum
}
