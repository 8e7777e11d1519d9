// Package velox defines the interfaces shared between the schema
// definition packages and the generated entity code.
package velox

import (
	"context"
	"fmt"
	"slices"

	"github.com/syssam/velox/schema"
	"github.com/syssam/velox/schema/edge"
	"github.com/syssam/velox/schema/field"
	"github.com/syssam/velox/schema/index"
)

type (
	// The Interface type describes the requirements for an exported type defined in the schema package.
	// It functions as the interface between the user's schema types and codegen loader.
	// Users should use the Schema type for embedding as follows:
	//
	//	type T struct {
	//		velox.Schema
	//	}
	//
	Interface interface {
		// Type is a dummy method, that is used in edge declaration.
		//
		// The Type method should be used as follows:
		//
		//	type S struct { velox.Schema }
		//
		//	type T struct { velox.Schema }
		//
		//	func (T) Edges() []velox.Edge {
		//		return []velox.Edge{
		//			edge.To("S", S.Type),
		//		}
		//	}
		//
		Type()
		// Fields returns the fields of the schema.
		Fields() []Field
		// Edges returns the edges of the schema.
		Edges() []Edge
		// Indexes returns the indexes of the schema.
		Indexes() []Index
		// Config returns an optional config for the schema.
		Config() Config
		// Mixin returns an optional list of Mixin to extends
		// the schema.
		Mixin() []Mixin
		// Hooks returns an optional list of Hook to add to
		// the schema.
		Hooks() []Hook
		// Interceptors returns an optional list of Interceptor
		// to add to the schema.
		Interceptors() []Interceptor
		// Policy returns the privacy policy of the schema.
		Policy() Policy
		// Annotations returns a list of schema annotations to be
		// passed to the codegen templates.
		Annotations() []schema.Annotation
	}

	// A Field interface returns a field descriptor for vertex fields/properties.
	// The usage for the interface is as follows:
	//
	//	func (T) Fields() []velox.Field {
	//		return []velox.Field{
	//			field.Int("int"),
	//		}
	//	}
	//
	Field interface {
		Descriptor() *field.Descriptor
	}

	// An Edge interface returns an edge descriptor for vertex edges.
	// The usage for the interface is as follows:
	//
	//	func (T) Edges() []velox.Edge {
	//		return []velox.Edge{
	//			edge.To("S", S.Type),
	//		}
	//	}
	//
	Edge interface {
		Descriptor() *edge.Descriptor
	}

	// An Index interface returns an index descriptor over vertex fields and edges.
	// The usage for the interface is as follows:
	//
	//	func (T) Indexes() []velox.Index {
	//		return []velox.Index{
	//			index.Fields("f1", "f2").
	//				Unique(),
	//		}
	//	}
	//
	Index interface {
		Descriptor() *index.Descriptor
	}

	// A Config structure is used to configure an entity in the schema.
	Config struct {
		// A Table is an optional table name defined for the schema.
		Table string
	}

	// The Mixin type describes a set of methods that can extend
	// other methods in the schema without calling them directly.
	//
	//	type TimeMixin struct {
	//		mixin.Schema
	//	}
	//
	//	func (TimeMixin) Fields() []velox.Field {
	//		return []velox.Field{
	//			field.Time("created_at").
	//				Immutable().
	//				Default(time.Now),
	//			field.Time("updated_at").
	//				Default(time.Now).
	//				UpdateDefault(time.Now),
	//		}
	//	}
	//
	//	type T struct {
	//		velox.Schema
	//	}
	//
	//	func (T) Mixin() []velox.Mixin {
	//		return []velox.Mixin{
	//			TimeMixin{},
	//		}
	//	}
	//
	Mixin interface {
		// Fields returns a slice of fields to add to the schema.
		Fields() []Field
		// Edges returns a slice of edges to add to the schema.
		Edges() []Edge
		// Indexes returns a slice of indexes to add to the schema.
		Indexes() []Index
		// Hooks returns a slice of hooks to add to the schema.
		// Note that mixin hooks are executed before schema hooks.
		Hooks() []Hook
		// Interceptors returns a slice of interceptors to add to the schema.
		// Note that mixin interceptors are executed before schema interceptors.
		Interceptors() []Interceptor
		// Policy returns a privacy policy to add to the schema.
		// Note that mixin policy are executed before schema policy.
		Policy() Policy
		// Annotations returns a list of schema annotations to add
		// to the schema annotations.
		Annotations() []schema.Annotation
	}

	// The Policy type defines the privacy policy of a schema.
	// The usage for the interface is as follows:
	//
	//	type T struct {
	//		velox.Schema
	//	}
	//
	//	func (T) Policy() velox.Policy {
	//		return privacy.AlwaysDenyRule()
	//	}
	//
	Policy interface {
		EvalMutation(context.Context, Mutation) error
		EvalQuery(context.Context, Query) error
	}

	// Schema is the default implementation for the schema Interface.
	// It can be embedded in end-user schemas as follows:
	//
	//	type T struct {
	//		velox.Schema
	//	}
	//
	Schema struct{}

	// A Viewer is the interface implemented by ViewSchema, and it
	// distinguishes between regular schemas (tables) and views.
	Viewer interface {
		view()
	}

	// View is the default implementation for presenting
	// database views in the schema package.
	//
	//	type T struct {
	//		velox.View
	//	}
	//
	View struct {
		Schema
	}
)

// Type implements the Interface interface.
func (Schema) Type() {}

// Fields of the schema.
func (Schema) Fields() []Field { return nil }

// Edges of the schema.
func (Schema) Edges() []Edge { return nil }

// Indexes of the schema.
func (Schema) Indexes() []Index { return nil }

// Config of the schema.
func (Schema) Config() Config { return Config{} }

// Mixin of the schema.
func (Schema) Mixin() []Mixin { return nil }

// Hooks of the schema.
func (Schema) Hooks() []Hook { return nil }

// Interceptors of the schema.
func (Schema) Interceptors() []Interceptor { return nil }

// Policy of the schema.
func (Schema) Policy() Policy { return nil }

// Annotations of the schema.
func (Schema) Annotations() []schema.Annotation { return nil }

func (View) view() {}

type (
	// Value represents a value returned by ent.
	Value any

	// Query represents a generated query builder.
	Query any

	// Mutation represents an operation that mutate the graph.
	// For example, adding a new node, updating many, or dropping
	// data. The implementation is generated by the compiler.
	Mutation interface {
		// Op returns the operation name generated by the compiler.
		Op() Op
		// Type returns the type name generated by the compiler.
		Type() string

		// Fields returns all fields that were changed during
		// this mutation. Note that, in order to get all numeric
		// fields that were in/decremented, call AddedFields().
		Fields() []string
		// Field returns the value of a field with the given name.
		// The second boolean value indicates that this field was
		// not set, or was not defined in the schema.
		Field(name string) (Value, bool)
		// SetField sets the value of a field with the given name.
		// It returns an error if the field is not defined in the
		// schema, or if the type mismatched the field type.
		SetField(name string, value Value) error
		// AddedFields returns all numeric fields that were in/decremented
		// during this mutation.
		AddedFields() []string
		// AddedField returns the numeric value that was in/decremented
		// from a field with the given name. The second boolean value
		// indicates that this field was not set, or was not defined in
		// the schema.
		AddedField(name string) (Value, bool)
		// AddField adds the value to the field with the given name.
		// It returns an error if the field is not defined in the schema,
		// or if the type mismatched the field type.
		AddField(name string, value Value) error
		// ClearedFields returns all nullable fields that were cleared
		// during this mutation.
		ClearedFields() []string
		// FieldCleared returns a boolean indicating if a field with the
		// given name was cleared in this mutation.
		FieldCleared(name string) bool
		// ClearField clears the value of a field with the given name.
		// It returns an error if the field is not defined in the schema.
		ClearField(name string) error
		// ResetField resets all changes in the mutation for the field
		// with the given name. It returns an error if the field is not
		// defined in the schema.
		ResetField(name string) error

		// AddedEdges returns all edge names that were set/added in
		// this mutation.
		AddedEdges() []string
		// AddedIDs returns all IDs (to other nodes) that were added for
		// the given edge name.
		AddedIDs(name string) []Value
		// RemovedEdges returns all edge names that were removed in
		// this mutation.
		RemovedEdges() []string
		// RemovedIDs returns all IDs (to other nodes) that were removed
		// for the edge with the given name.
		RemovedIDs(name string) []Value
		// ClearedEdges returns all edge names that were cleared in
		// this mutation.
		ClearedEdges() []string
		// EdgeCleared returns a boolean indicating if an edge with the
		// given name was cleared in this mutation.
		EdgeCleared(name string) bool
		// ClearEdge clears the value of an edge with the given name.
		// It returns an error if the edge name is not defined in the
		// schema.
		ClearEdge(name string) error
		// ResetEdge resets all changes in the mutation for the edge
		// with the given name. It returns an error if the edge is not
		// defined in the schema.
		ResetEdge(name string) error
	}

	// Mutator is the interface that wraps the Mutate method.
	Mutator interface {
		// Mutate apply the given mutation on the graph.
		Mutate(context.Context, Mutation) (Value, error)
	}

	// The MutateFunc type is an adapter to allow the use of ordinary
	// function as mutator. If f is a function with the appropriate signature,
	// MutateFunc(f) is a Mutator that calls f.
	MutateFunc func(context.Context, Mutation) (Value, error)

	// Hook defines the "mutation middleware". A function that gets a Mutator
	// and returns a Mutator. For example:
	//
	//	hook := func(next velox.Mutator) velox.Mutator {
	//		return velox.MutateFunc(func(ctx context.Context, m velox.Mutation) (velox.Value, error) {
	//			fmt.Printf("Type: %s, Operation: %s, ConcreteType: %T\n", m.Type(), m.Op(), m)
	//			return next.Mutate(ctx, m)
	//		})
	//	}
	//
	Hook func(Mutator) Mutator

	// Querier is the interface that wraps the Query method.
	Querier interface {
		// Query runs the given query on the graph.
		Query(context.Context, Query) (Value, error)
	}

	// The QuerierFunc type is an adapter to allow the use of ordinary
	// function as querier. If f is a function with the appropriate signature,
	// QuerierFunc(f) is a Querier that calls f.
	QuerierFunc func(context.Context, Query) (Value, error)

	// Interceptor defines an execution middleware for various types of queries.
	Interceptor interface {
		// Intercept returns a new Querier that wraps the given one.
		Intercept(Querier) Querier
	}

	// The InterceptFunc type is an adapter to allow the use of ordinary
	// function as interceptor. If f is a function with the appropriate signature,
	// InterceptFunc(f) is an Interceptor that calls f.
	InterceptFunc func(Querier) Querier

	// Traverser defines a type that can traverse (walk) query builders
	// before their execution.
	Traverser interface {
		// Traverse allows observing and modifying the query builder.
		Traverse(context.Context, Query) error
	}

	// The TraverseFunc type is an adapter to allow the use of ordinary
	// function as traverser. If f is a function with the appropriate
	// signature, TraverseFunc(f) is a Traverser that calls f.
	TraverseFunc func(context.Context, Query) error
)

// Mutate calls f(ctx, m).
func (f MutateFunc) Mutate(ctx context.Context, m Mutation) (Value, error) {
	return f(ctx, m)
}

// Query calls f(ctx, q).
func (f QuerierFunc) Query(ctx context.Context, q Query) (Value, error) {
	return f(ctx, q)
}

// Intercept calls f(next).
func (f InterceptFunc) Intercept(next Querier) Querier {
	return f(next)
}

// Intercept returns the given Querier as is. It allows using
// a Traverser in places that expect an Interceptor.
func (f TraverseFunc) Intercept(next Querier) Querier {
	return next
}

// Traverse calls f(ctx, q).
func (f TraverseFunc) Traverse(ctx context.Context, q Query) error {
	return f(ctx, q)
}

// An Op represents a mutation operation.
type Op uint

// Mutation operations.
const (
	OpCreate    Op = 1 << iota // node creation.
	OpUpdate                   // update nodes by predicate (if any).
	OpUpdateOne                // update one node.
	OpDelete                   // delete nodes by predicate (if any).
	OpDeleteOne                // delete one node.
)

var ops = [...]string{
	OpCreate:    "OpCreate",
	OpUpdate:    "OpUpdate",
	OpUpdateOne: "OpUpdateOne",
	OpDelete:    "OpDelete",
	OpDeleteOne: "OpDeleteOne",
}

// String returns the string representation of an operation.
func (i Op) String() string {
	if i < OpCreate || int(i) >= len(ops) || ops[i] == "" {
		return fmt.Sprintf("Op(%d)", i)
	}
	return ops[i]
}

// Is returns true if the operation matches any of the given operations.
func (i Op) Is(o Op) bool { return i&o != 0 }

// QueryContext contains all information about a query executed
// by an interceptor, such as the type queried, limit and fields.
type QueryContext struct {
	// Op is the calling query operation.
	Op string
	// Type of the schema being queried.
	Type string
	// Fields to select in the query, or nil if all fields
	// should be selected.
	Fields []string
	// Limit applied to the query, if any.
	Limit *int
	// Offset applied to the query, if any.
	Offset *int
	// Unique defines whether the query is marked as distinct.
	Unique *bool
}

// Clone returns a copy of the query context.
func (q *QueryContext) Clone() *QueryContext {
	if q == nil {
		return nil
	}
	qc := *q
	qc.Fields = slices.Clone(q.Fields)
	return &qc
}

// AppendFieldOnce appends the given field to the context fields
// in case it is not already present.
func (q *QueryContext) AppendFieldOnce(name string) *QueryContext {
	if !slices.Contains(q.Fields, name) {
		q.Fields = append(q.Fields, name)
	}
	return q
}

type queryCtxKey struct{}

// NewQueryContext returns a new context with the given QueryContext attached.
func NewQueryContext(parent context.Context, c *QueryContext) context.Context {
	return context.WithValue(parent, queryCtxKey{}, c)
}

// QueryFromContext returns the QueryContext value stored in ctx, if any.
func QueryFromContext(ctx context.Context) *QueryContext {
	c, _ := ctx.Value(queryCtxKey{}).(*QueryContext)
	return c
}
