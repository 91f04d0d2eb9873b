package core

// Value is the result of resolving one path step against a record.
// It is a closed union: a leaf yields Text, an intermediate step yields
// a List whose elements are fed into the rest of the path.
type Value interface {
	isValue()
}

// Text is a leaf field value that can be matched against a query.
type Text string

func (Text) isValue() {}

// List is a sub-collection whose elements are descended into by the
// remainder of a path.
type List []any

func (List) isValue() {}

// Accessor reads one field off a record. It reports false when the record's
// runtime shape does not carry the field, which the engines treat as a
// silent non-match rather than an error.
type Accessor func(record any) (Value, bool)

// TextField builds an accessor for a string field of a concrete record type.
// Records of any other type resolve to (nil, false).
func TextField[R any](get func(R) string) Accessor {
	return func(record any) (Value, bool) {
		r, ok := record.(R)
		if !ok {
			return nil, false
		}
		return Text(get(r)), true
	}
}

// ListField builds an accessor for a sub-collection field of a concrete
// record type. Elements are boxed so nested paths can descend into them.
func ListField[R, E any](get func(R) []E) Accessor {
	return func(record any) (Value, bool) {
		r, ok := record.(R)
		if !ok {
			return nil, false
		}
		items := get(r)
		boxed := make([]any, len(items))
		for i, item := range items {
			boxed[i] = item
		}
		return List(boxed), true
	}
}

// Path describes how to reach a leaf text field inside a record, possibly
// through one or more sub-collections. Paths are immutable configuration:
// built once per record type, shared freely across searches, never mutated
// by the engines. A path with no tail must resolve to Text at runtime; a
// path with a tail must resolve to a List.
type Path struct {
	accessor Accessor
	next     *Path
}

// Leaf creates a path that terminates at a text field.
func Leaf(accessor Accessor) *Path {
	return &Path{accessor: accessor}
}

// Nested creates a path that descends through a sub-collection field into
// next for each element.
func Nested(accessor Accessor, next *Path) *Path {
	return &Path{accessor: accessor, next: next}
}

// Resolve reads this step's field off the record. It reports false when the
// accessor does not apply to the record's runtime shape.
func (p *Path) Resolve(record any) (Value, bool) {
	if p.accessor == nil {
		return nil, false
	}
	return p.accessor(record)
}

// Next returns the nested tail, or nil at a leaf.
func (p *Path) Next() *Path {
	return p.next
}
