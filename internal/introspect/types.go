package introspect

// Marker is the runtime type name that distinguishes nanobind bindings
// from plain Python objects.
type Marker string

const (
	MarkerPlain        Marker = "plain"
	MarkerNativeType   Marker = "nb_type"
	MarkerNativeEnum   Marker = "nb_enum"
	MarkerNativeFunc   Marker = "nb_func"
	MarkerNativeMethod Marker = "nb_method"
)

// IsNativeRoutine reports whether the marker belongs to a bound function or method.
func (m Marker) IsNativeRoutine() bool {
	return m == MarkerNativeFunc || m == MarkerNativeMethod
}

// Object is one introspected value.
type Object interface {
	// Members lists the attributes of a module or class in introspection order.
	Members() []Member
	IsModule() bool
	IsClass() bool
	IsRoutine() bool
	IsProperty() bool
	Marker() Marker
	// Doc returns the __doc__ text and whether one exists.
	Doc() (string, bool)
	// TypeName is the name of the value's runtime type.
	TypeName() string
	// Bases lists base class names of a class.
	Bases() []string
	// Accessors returns the getter and setter of a property; either may be nil.
	Accessors() (getter, setter Object)
}

// Member is a named attribute of a namespace. Object is nil when the source
// could not describe the value.
type Member struct {
	Name   string
	Object Object
}
