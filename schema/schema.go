package schema

type (
	// Annotation is used to attach arbitrary metadata to schema objects
	// (schemas, fields, edges and indexes). The metadata is injected to
	// the compiler and can be accessed by templates and extensions.
	//
	// Database and GraphQL annotations are implemented on top of this
	// interface in the sqlschema and graphql packages.
	Annotation interface {
		// Name defines the name of the annotation to be retrieved by the codegen.
		Name() string
	}

	// Merger wraps the single Merge function allows custom annotation to provide
	// an annotation merge func in case of multiple annotations of the same name.
	// For example, annotations provided by the mixin schemas and the schema itself.
	Merger interface {
		Merge(Annotation) Annotation
	}
)

// CommentAnnotation is a builtin schema annotation for
// configuring the schema's comment.
type CommentAnnotation struct {
	Text string // Comment text.
}

// Name implements the Annotation interface.
func (*CommentAnnotation) Name() string {
	return "Comment"
}

// Comment is a builtin schema annotation for attaching
// comments to the schema. For example:
//
//	func (T) Annotations() []schema.Annotation {
//		return []schema.Annotation{
//			schema.Comment("T holds the information about ..."),
//		}
//	}
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}

var _ Annotation = (*CommentAnnotation)(nil)
