// Package graphql provides GraphQL annotations for Velox schemas.
//
// The annotations declared here are attached to schema types, fields and
// edges, and are consumed by GraphQL tooling when building an API on top
// of the schema. They follow Ent's entgql patterns.
//
// # Annotations
//
// Control GraphQL exposure using annotations on your schemas:
//
//	func (User) Annotations() []schema.Annotation {
//	    return []schema.Annotation{
//	        graphql.RelayConnection(),              // Enable Relay connections
//	        graphql.QueryField(),                   // Include in Query type
//	        graphql.Type("Member"),                 // Custom GraphQL type name
//	        graphql.Mutations(                      // Control mutations
//	            graphql.MutationCreate(),
//	            graphql.MutationUpdate(),
//	        ),
//	        graphql.Skip(graphql.SkipWhereInput),   // Skip specific features
//	    }
//	}
//
// Field-level annotations:
//
//	func (User) Fields() []velox.Field {
//	    return []velox.Field{
//	        field.String("email").Unique().
//	            Annotations(
//	                graphql.OrderField("EMAIL"),     // Custom order field name
//	                graphql.Skip(graphql.SkipAll),   // Exclude from GraphQL
//	            ),
//	    }
//	}
//
// # Skip Modes
//
// The Skip annotation supports different modes:
//   - SkipType: Skip the entire type from GraphQL schema
//   - SkipEnumField: Skip enum field from GraphQL enum
//   - SkipOrderField: Skip field from ordering options
//   - SkipWhereInput: Skip type from WhereInput generation
//   - SkipMutationCreateInput: Skip field from CreateXXXInput
//   - SkipMutationUpdateInput: Skip field from UpdateXXXInput
//   - SkipAll: Skip from all generated code
//
// # WhereOps
//
// WhereOps declares which filter predicates a field exposes in its
// WhereInput type. Individual operations can be combined with the |
// operator, and presets cover the common cases:
//
//	func (Order) Fields() []velox.Field {
//	    return []velox.Field{
//	        // Use preset: only equality predicates
//	        field.String("status").
//	            Annotations(graphql.WhereOps(graphql.OpsEquality)),
//
//	        // Combine presets: comparison + nullable
//	        field.Time("shipped_at").Nillable().
//	            Annotations(graphql.WhereOps(graphql.OpsComparison | graphql.OpsNullable)),
//
//	        // Individual operators: only EQ and In
//	        field.Int64("priority").
//	            Annotations(graphql.WhereOps(graphql.OpEQ | graphql.OpIn)),
//
//	        // Disable all predicates for a field
//	        field.String("internal_notes").
//	            Annotations(graphql.WhereOps(graphql.OpsNone)),
//	    }
//	}
//
// For custom Go types the tooling cannot infer predicates, so WhereOps
// must be set explicitly:
//
//	field.Other("price", decimal.Decimal{}).
//	    Annotations(graphql.WhereOps(graphql.OpsComparison))
//
// # Input Validation
//
// Validation tags can be attached to generated mutation inputs:
//
//	field.String("email").
//	    Annotations(
//	        graphql.CreateInputValidate("required,email"),
//	        graphql.UpdateInputValidate("omitempty,email"),
//	    )
package graphql
