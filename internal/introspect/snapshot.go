package introspect

import "slices"

// EntryKind is the coarse classification of a snapshot entry.
type EntryKind string

const (
	EntryModule   EntryKind = "module"
	EntryClass    EntryKind = "class"
	EntryRoutine  EntryKind = "routine"
	EntryProperty EntryKind = "property"
	EntryValue    EntryKind = "value"
)

// Snapshot is a serialized introspection of one module.
type Snapshot struct {
	// Version of the snapshot format.
	Version string `yaml:"version"`
	// Module is the import name the snapshot was taken from.
	Module string `yaml:"module"`
	// Root describes the module itself.
	Root *Entry `yaml:"root"`
}

// Entry describes one value of a snapshot. It implements Object.
type Entry struct {
	Name    string    `yaml:"name"`
	Kind    EntryKind `yaml:"kind"`
	Mark    Marker    `yaml:"marker,omitempty"`
	DocText *string   `yaml:"doc,omitempty"`
	Type    string    `yaml:"type,omitempty"`
	BaseIDs []string  `yaml:"bases,omitempty"`
	Entries []*Entry  `yaml:"members,omitempty"`
	Getter  *Entry    `yaml:"getter,omitempty"`
	Setter  *Entry    `yaml:"setter,omitempty"`
}

var _ Object = (*Entry)(nil)

// Members implements Object.
func (e *Entry) Members() []Member {
	out := make([]Member, 0, len(e.Entries))

	for _, child := range e.Entries {
		if child == nil {
			out = append(out, Member{})

			continue
		}

		out = append(out, Member{Name: child.Name, Object: child})
	}

	return out
}

// IsModule implements Object.
func (e *Entry) IsModule() bool { return e.Kind == EntryModule }

// IsClass implements Object.
func (e *Entry) IsClass() bool { return e.Kind == EntryClass }

// IsRoutine implements Object.
func (e *Entry) IsRoutine() bool { return e.Kind == EntryRoutine }

// IsProperty implements Object.
func (e *Entry) IsProperty() bool { return e.Kind == EntryProperty }

// Marker implements Object.
func (e *Entry) Marker() Marker {
	if e.Mark == "" {
		return MarkerPlain
	}

	return e.Mark
}

// Doc implements Object.
func (e *Entry) Doc() (string, bool) {
	if e.DocText == nil {
		return "", false
	}

	return *e.DocText, true
}

// TypeName implements Object.
func (e *Entry) TypeName() string { return e.Type }

// Bases implements Object.
func (e *Entry) Bases() []string { return slices.Clone(e.BaseIDs) }

// Accessors implements Object.
func (e *Entry) Accessors() (getter, setter Object) {
	if e.Getter != nil {
		getter = e.Getter
	}

	if e.Setter != nil {
		setter = e.Setter
	}

	return getter, setter
}

// Find returns the member entry at a dotted path below e, or nil.
func (e *Entry) Find(path ...string) *Entry {
	cur := e

	for _, name := range path {
		var next *Entry

		for _, child := range cur.Entries {
			if child != nil && child.Name == name {
				next = child

				break
			}
		}

		if next == nil {
			return nil
		}

		cur = next
	}

	return cur
}
