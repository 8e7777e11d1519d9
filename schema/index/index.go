// Package index provides an API for defining indexes over fields
// and edges in the schema.
package index

import "github.com/syssam/velox/schema"

// A Descriptor for index configuration.
type Descriptor struct {
	Unique      bool                // unique index.
	Edges       []string            // edge columns.
	Fields      []string            // field columns.
	StorageKey  string              // custom index name.
	Annotations []schema.Annotation // index annotations.
}

// Builder for indexes on vertex columns and edges in the graph.
type Builder struct {
	desc *Descriptor
}

// Fields creates an index on the given vertex fields.
// Note that indexes are implemented only for SQL dialects.
//
//	func (T) Indexes() []velox.Index {
//		return []velox.Index{
//			index.Fields("field1", "field2"),
//		}
//	}
func Fields(fields ...string) *Builder {
	return &Builder{desc: &Descriptor{Fields: fields}}
}

// Edges creates an index on the given vertex edge fields.
// Note that indexes are implemented only for SQL dialects.
//
//	func (T) Indexes() []velox.Index {
//		return []velox.Index{
//			index.Edges("edge1", "edge2"),
//		}
//	}
func Edges(edges ...string) *Builder {
	return &Builder{desc: &Descriptor{Edges: edges}}
}

// Fields sets the fields of the index.
//
//	func (T) Indexes() []velox.Index {
//		return []velox.Index{
//			index.Edges("edge1", "edge2").
//				Fields("field1", "field2"),
//		}
//	}
func (b *Builder) Fields(fields ...string) *Builder {
	b.desc.Fields = fields
	return b
}

// Edges sets the fields index to be unique.
//
//	func (T) Indexes() []velox.Index {
//		return []velox.Index{
//			index.Fields("field1", "field2").
//				Edges("edge1", "edge2"),
//		}
//	}
func (b *Builder) Edges(edges ...string) *Builder {
	b.desc.Edges = edges
	return b
}

// Unique sets the index to be a unique index.
// Note that defining a uniqueness on optional fields won't prevent
// duplicates if one of the column contains NULL values.
func (b *Builder) Unique() *Builder {
	b.desc.Unique = true
	return b
}

// StorageKey sets the storage key of the index. In SQL dialects, it's the index name.
func (b *Builder) StorageKey(key string) *Builder {
	b.desc.StorageKey = key
	return b
}

// Annotations adds a list of annotations to the index object to be used by
// codegen extensions.
func (b *Builder) Annotations(annotations ...schema.Annotation) *Builder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Descriptor interface.
func (b *Builder) Descriptor() *Descriptor {
	return b.desc
}
