package field

import "github.com/syssam/velox/schema"

// Annotation is a builtin schema annotation for attaching
// field configuration to schema objects in codegen.
type Annotation struct {
	// The StructTag option allows overriding the struct-tag
	// of the fields in the generated entity. For example:
	//
	//	field.Annotation{
	//		StructTag: map[string]string{
	//			"id": `json:"id,omitempty" yaml:"-"`,
	//		},
	//	}
	StructTag map[string]string

	// The ID option defines a composite identifier of multiple
	// fields. For example:
	//
	//	field.ID("version", "name")
	ID []string
}

// ID defines a composite identifier from the given field names.
// Note, "id" fields cannot be defined on schemas that use this
// annotation.
func ID(first, second string, fields ...string) *Annotation {
	return &Annotation{ID: append([]string{first, second}, fields...)}
}

// Name describes the annotation name.
func (Annotation) Name() string {
	return "Fields"
}

// Merge implements the schema.Merger interface.
func (a Annotation) Merge(other schema.Annotation) schema.Annotation {
	var ant Annotation
	switch other := other.(type) {
	case Annotation:
		ant = other
	case *Annotation:
		if other != nil {
			ant = *other
		}
	default:
		return a
	}
	if len(ant.StructTag) > 0 {
		if a.StructTag == nil {
			a.StructTag = make(map[string]string, len(ant.StructTag))
		}
		for name, tag := range ant.StructTag {
			a.StructTag[name] = tag
		}
	}
	if len(ant.ID) > 0 {
		a.ID = ant.ID
	}
	return a
}

var (
	_ schema.Annotation = (*Annotation)(nil)
	_ schema.Merger     = (*Annotation)(nil)
)
