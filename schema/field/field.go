package field

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"errors"
	"fmt"
	"path"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/syssam/velox/schema"
)

//go:generate go run internal/gen.go

// String returns a new Descriptor with a string type.
func String(name string) *stringBuilder {
	return &stringBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeString},
	}}
}

// Text returns a new string Descriptor without a size limit.
// It is rendered to a text-like column in the database, e.g. TEXT in MySQL.
func Text(name string) *stringBuilder {
	b := String(name)
	b.desc.Size = maxStringSize
	return b
}

// Bytes returns a new Descriptor with a []byte type.
func Bytes(name string) *bytesBuilder {
	return &bytesBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeBytes, Nillable: true},
	}}
}

// Bool returns a new Descriptor with a bool type.
func Bool(name string) *boolBuilder {
	return &boolBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeBool},
	}}
}

// Time returns a new Descriptor with a time.Time type.
func Time(name string) *timeBuilder {
	return &timeBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeTime, PkgPath: "time"},
	}}
}

// JSON returns a new Descriptor with a json type.
// The given Go value is used for describing the type
// in the generated entity. For example:
//
//	field.JSON("dirs", []http.Dir{}).
//		Optional()
//
//	field.JSON("info", &Info{}).
//		Optional()
func JSON(name string, typ any) *jsonBuilder {
	b := &jsonBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeJSON},
	}}
	t := reflect.TypeOf(typ)
	if t == nil {
		b.desc.err(errors.New("expect a Go value as JSON type but got nil"))
		return b
	}
	b.desc.Info.Ident = t.String()
	b.desc.Info.PkgPath = pkgPath(t)
	b.desc.Info.RType = rtypeOf(t)
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		b.desc.Info.Nillable = true
	}
	if b.desc.Info.PkgPath != "" {
		b.desc.Info.PkgName = path.Base(b.desc.Info.PkgPath)
	}
	return b
}

// Any returns a new JSON field that can hold a value of any type.
func Any(name string) *jsonBuilder {
	return &jsonBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeJSON, Ident: "any", Nillable: true},
	}}
}

// Strings returns a new JSON Descriptor with a []string type.
func Strings(name string) *sliceBuilder[string] {
	return sliceOf[string](name)
}

// Ints returns a new JSON Descriptor with an []int type.
func Ints(name string) *sliceBuilder[int] {
	return sliceOf[int](name)
}

// Floats returns a new JSON Descriptor with a []float64 type.
func Floats(name string) *sliceBuilder[float64] {
	return sliceOf[float64](name)
}

func sliceOf[T any](name string) *sliceBuilder[T] {
	t := reflect.TypeOf([]T(nil))
	return &sliceBuilder[T]{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeJSON, Ident: t.String(), Nillable: true, RType: rtypeOf(t)},
	}}
}

// Enum returns a new Descriptor with an enum type.
func Enum(name string) *enumBuilder {
	return &enumBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{Type: TypeEnum},
	}}
}

// UUID returns a new Descriptor with a UUID type.
// The given value is used for describing the Go type
// in the generated entity. For example:
//
//	field.UUID("id", uuid.UUID{}).
//		Default(uuid.New)
func UUID(name string, typ driver.Valuer) *uuidBuilder {
	t := reflect.TypeOf(typ)
	tv := indirect(t)
	return &uuidBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{
			Type:     TypeUUID,
			Ident:    tv.String(),
			PkgPath:  tv.PkgPath(),
			PkgName:  path.Base(tv.PkgPath()),
			Nillable: t.Kind() == reflect.Pointer,
			RType:    rtypeOf(t),
		},
	}}
}

// Other represents a field that is not a good fit for any of the standard
// field types. The second argument defines the Go type of the field, and
// the SchemaType option must be set, because the database type cannot be
// inferred. For example:
//
//	field.Other("duration", &Duration{}).
//		SchemaType(map[string]string{
//			dialect.Postgres: "interval",
//		})
func Other(name string, typ driver.Valuer) *otherBuilder {
	t := reflect.TypeOf(typ)
	tv := indirect(t)
	return &otherBuilder{&Descriptor{
		Name: name,
		Info: &TypeInfo{
			Type:     TypeOther,
			Ident:    t.String(),
			PkgPath:  tv.PkgPath(),
			PkgName:  path.Base(tv.PkgPath()),
			Nillable: t.Kind() == reflect.Pointer,
			RType:    rtypeOf(t),
		},
	}}
}

// stringBuilder is the builder for string fields.
type stringBuilder struct {
	desc *Descriptor
}

// Unique makes the field unique within all vertices of this type.
func (b *stringBuilder) Unique() *stringBuilder {
	b.desc.Unique = true
	return b
}

// Sensitive fields not printable and not serializable.
func (b *stringBuilder) Sensitive() *stringBuilder {
	b.desc.Sensitive = true
	return b
}

// Match adds a regex matcher for this field. Values that don't match
// this regexp fail on validation.
func (b *stringBuilder) Match(re *regexp.Regexp) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if !re.MatchString(v) {
			return fmt.Errorf("value does not match pattern %q", re)
		}
		return nil
	})
	return b
}

// MinLen adds a length validator for this field.
// Operation fails if the length of the string is less than the given value.
func (b *stringBuilder) MinLen(i int) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if len(v) < i {
			return errors.New("value is less than the required length")
		}
		return nil
	})
	return b
}

// NotEmpty adds a length validator for this field.
// Operation fails if the length of the string is zero.
func (b *stringBuilder) NotEmpty() *stringBuilder {
	return b.MinLen(1)
}

// MaxLen sets the max-length of the string field in the database.
// In addition, it limits the length of the string in validation.
func (b *stringBuilder) MaxLen(i int) *stringBuilder {
	b.desc.Size = i
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if len(v) > i {
			return errors.New("value is greater than the required length")
		}
		return nil
	})
	return b
}

// MinRuneLen adds a rune-count validator for this field.
// Unlike MinLen, the value is measured in runes and not in bytes.
func (b *stringBuilder) MinRuneLen(i int) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if utf8.RuneCountInString(v) < i {
			return fmt.Errorf("rune count is less than minimum required length %d", i)
		}
		return nil
	})
	return b
}

// MaxRuneLen adds a rune-count validator for this field.
// Unlike MaxLen, the value is measured in runes and not in bytes,
// and it does not limit the column size in the database.
func (b *stringBuilder) MaxRuneLen(i int) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v string) error {
		if utf8.RuneCountInString(v) > i {
			return fmt.Errorf("rune count exceeds maximum allowed length %d", i)
		}
		return nil
	})
	return b
}

// Validate adds a validator for this field. Operation fails if the validation fails.
func (b *stringBuilder) Validate(fn func(string) error) *stringBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Default sets the default value of the field.
func (b *stringBuilder) Default(s string) *stringBuilder {
	b.desc.Default = s
	return b
}

// DefaultFunc sets the function that is applied to set the default value
// of the field on creation. For example:
//
//	field.String("cuid").
//		DefaultFunc(cuid.New)
func (b *stringBuilder) DefaultFunc(fn any) *stringBuilder {
	if t := reflect.TypeOf(fn); t.Kind() != reflect.Func {
		b.desc.err(fmt.Errorf("field.String(%q).DefaultFunc expects func but got %s", b.desc.Name, t.Kind()))
		return b
	}
	b.desc.Default = fn
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *stringBuilder) Nillable() *stringBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *stringBuilder) Optional() *stringBuilder {
	b.desc.Optional = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *stringBuilder) Immutable() *stringBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *stringBuilder) Comment(c string) *stringBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated. Deprecated fields are not
// selected by default in queries.
func (b *stringBuilder) Deprecated(reason ...string) *stringBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *stringBuilder) StructTag(s string) *stringBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *stringBuilder) StorageKey(key string) *stringBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for string.
//
//	field.String("name").
//		SchemaType(map[string]string{
//			dialect.MySQL:    "text",
//			dialect.Postgres: "varchar",
//		})
func (b *stringBuilder) SchemaType(types map[string]string) *stringBuilder {
	b.desc.SchemaType = types
	return b
}

// GoType overrides the default Go type with a custom one.
//
//	field.String("dir").
//		GoType(http.Dir("dir"))
func (b *stringBuilder) GoType(typ any) *stringBuilder {
	b.desc.goType(typ)
	return b
}

// ValueScanner provides an external value-scanner for the field.
// Using this option, the Go type can be any type, as long as it
// can be converted to and from the database string value.
func (b *stringBuilder) ValueScanner(vs any) *stringBuilder {
	b.desc.ValueScanner = vs
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *stringBuilder) Annotations(annotations ...schema.Annotation) *stringBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *stringBuilder) Descriptor() *Descriptor {
	b.desc.checkGoType(stringType)
	b.desc.checkDefaultFunc(stringType)
	return b.desc
}

// timeBuilder is the builder for time fields.
type timeBuilder struct {
	desc *Descriptor
}

// Unique makes the field unique within all vertices of this type.
func (b *timeBuilder) Unique() *timeBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the function that is applied to set the default value
// of the field on creation. For example:
//
//	field.Time("created_at").
//		Default(time.Now)
func (b *timeBuilder) Default(fn any) *timeBuilder {
	b.desc.Default = fn
	return b
}

// UpdateDefault sets the function that is applied to set the default value
// of the field on update. For example:
//
//	field.Time("updated_at").
//		Default(time.Now).
//		UpdateDefault(time.Now)
func (b *timeBuilder) UpdateDefault(fn any) *timeBuilder {
	b.desc.UpdateDefault = fn
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *timeBuilder) Nillable() *timeBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *timeBuilder) Optional() *timeBuilder {
	b.desc.Optional = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *timeBuilder) Immutable() *timeBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *timeBuilder) Comment(c string) *timeBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *timeBuilder) Deprecated(reason ...string) *timeBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *timeBuilder) StructTag(s string) *timeBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *timeBuilder) StorageKey(key string) *timeBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for time.
//
//	field.Time("deleted_at").
//		SchemaType(map[string]string{
//			dialect.MySQL: "datetime(6)",
//		})
func (b *timeBuilder) SchemaType(types map[string]string) *timeBuilder {
	b.desc.SchemaType = types
	return b
}

// GoType overrides the default Go type with a custom one.
//
//	field.Time("deleted_at").
//		GoType(&sql.NullTime{})
func (b *timeBuilder) GoType(typ any) *timeBuilder {
	b.desc.goType(typ)
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *timeBuilder) Annotations(annotations ...schema.Annotation) *timeBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *timeBuilder) Descriptor() *Descriptor {
	b.desc.checkGoType(timeType)
	b.desc.checkDefaultFunc(timeType)
	return b.desc
}

// boolBuilder is the builder for boolean fields.
type boolBuilder struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *boolBuilder) Default(v bool) *boolBuilder {
	b.desc.Default = v
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *boolBuilder) Nillable() *boolBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *boolBuilder) Optional() *boolBuilder {
	b.desc.Optional = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *boolBuilder) Immutable() *boolBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *boolBuilder) Comment(c string) *boolBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *boolBuilder) Deprecated(reason ...string) *boolBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *boolBuilder) StructTag(s string) *boolBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *boolBuilder) StorageKey(key string) *boolBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for bool.
func (b *boolBuilder) SchemaType(types map[string]string) *boolBuilder {
	b.desc.SchemaType = types
	return b
}

// GoType overrides the default Go type with a custom one.
//
//	field.Bool("deleted").
//		GoType(&sql.NullBool{})
func (b *boolBuilder) GoType(typ any) *boolBuilder {
	b.desc.goType(typ)
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *boolBuilder) Annotations(annotations ...schema.Annotation) *boolBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *boolBuilder) Descriptor() *Descriptor {
	b.desc.checkGoType(boolType)
	b.desc.checkDefaultFunc(boolType)
	return b.desc
}

// bytesBuilder is the builder for bytes fields.
type bytesBuilder struct {
	desc *Descriptor
}

// Unique makes the field unique within all vertices of this type.
func (b *bytesBuilder) Unique() *bytesBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the field.
func (b *bytesBuilder) Default(v []byte) *bytesBuilder {
	b.desc.Default = v
	return b
}

// DefaultFunc sets the function that is applied to set the default value
// of the field on creation. For example:
//
//	field.Bytes("uuid").
//		DefaultFunc(uuid.New)
func (b *bytesBuilder) DefaultFunc(fn any) *bytesBuilder {
	if t := reflect.TypeOf(fn); t.Kind() != reflect.Func {
		b.desc.err(fmt.Errorf("field.Bytes(%q).DefaultFunc expects func but got %s", b.desc.Name, t.Kind()))
		return b
	}
	b.desc.Default = fn
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *bytesBuilder) Nillable() *bytesBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *bytesBuilder) Optional() *bytesBuilder {
	b.desc.Optional = true
	return b
}

// Sensitive fields not printable and not serializable.
func (b *bytesBuilder) Sensitive() *bytesBuilder {
	b.desc.Sensitive = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *bytesBuilder) Immutable() *bytesBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *bytesBuilder) Comment(c string) *bytesBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *bytesBuilder) Deprecated(reason ...string) *bytesBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// MaxLen sets the maximum length of the field in the database.
// In addition, it limits the length of the value in validation.
func (b *bytesBuilder) MaxLen(i int) *bytesBuilder {
	b.desc.Size = i
	b.desc.Validators = append(b.desc.Validators, func(v []byte) error {
		if len(v) > i {
			return errors.New("value is greater than the required length")
		}
		return nil
	})
	return b
}

// MinLen adds a length validator for this field.
// Operation fails if the length of the value is less than the given value.
func (b *bytesBuilder) MinLen(i int) *bytesBuilder {
	b.desc.Validators = append(b.desc.Validators, func(v []byte) error {
		if len(v) < i {
			return errors.New("value is less than the required length")
		}
		return nil
	})
	return b
}

// NotEmpty adds a length validator for this field.
// Operation fails if the length of the value is zero.
func (b *bytesBuilder) NotEmpty() *bytesBuilder {
	return b.MinLen(1)
}

// Validate adds a validator for this field. Operation fails if the validation fails.
func (b *bytesBuilder) Validate(fn func([]byte) error) *bytesBuilder {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// StructTag sets the struct tag of the field.
func (b *bytesBuilder) StructTag(s string) *bytesBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *bytesBuilder) StorageKey(key string) *bytesBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for bytes.
//
//	field.Bytes("blob").
//		SchemaType(map[string]string{
//			dialect.MySQL: "mediumblob",
//		})
func (b *bytesBuilder) SchemaType(types map[string]string) *bytesBuilder {
	b.desc.SchemaType = types
	return b
}

// GoType overrides the default Go type with a custom one.
//
//	field.Bytes("ip").
//		GoType(net.IP("127.0.0.1"))
func (b *bytesBuilder) GoType(typ any) *bytesBuilder {
	b.desc.goType(typ)
	return b
}

// ValueScanner provides an external value-scanner for the field.
func (b *bytesBuilder) ValueScanner(vs any) *bytesBuilder {
	b.desc.ValueScanner = vs
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *bytesBuilder) Annotations(annotations ...schema.Annotation) *bytesBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *bytesBuilder) Descriptor() *Descriptor {
	b.desc.checkGoType(bytesType)
	b.desc.checkDefaultFunc(bytesType)
	return b.desc
}

// jsonBuilder is the builder for json fields.
type jsonBuilder struct {
	desc *Descriptor
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *jsonBuilder) StorageKey(key string) *jsonBuilder {
	b.desc.StorageKey = key
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *jsonBuilder) Optional() *jsonBuilder {
	b.desc.Optional = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *jsonBuilder) Immutable() *jsonBuilder {
	b.desc.Immutable = true
	return b
}

// Sensitive fields not printable and not serializable.
func (b *jsonBuilder) Sensitive() *jsonBuilder {
	b.desc.Sensitive = true
	return b
}

// Comment sets the comment of the field.
func (b *jsonBuilder) Comment(c string) *jsonBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *jsonBuilder) Deprecated(reason ...string) *jsonBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// Default sets the default value of the field. The given value must
// match the field type, or be a zero-argument function that returns it.
// For example:
//
//	field.JSON("dirs", []http.Dir{}).
//		Default([]http.Dir{"/tmp"})
func (b *jsonBuilder) Default(v any) *jsonBuilder {
	b.desc.Default = v
	t := reflect.TypeOf(v)
	rt := b.desc.Info.RType
	if rt == nil {
		return b
	}
	switch {
	case t == nil:
		b.desc.err(fmt.Errorf("expect type (func() %[1]s) or (%[1]s) for default value", b.desc.Info.Ident))
	case t == rt.rtype:
	case t.Kind() == reflect.Func && t.NumIn() == 0 && t.NumOut() == 1 && t.Out(0) == rt.rtype:
	default:
		b.desc.err(fmt.Errorf("expect type (func() %[1]s) or (%[1]s) for default value", b.desc.Info.Ident))
	}
	return b
}

// StructTag sets the struct tag of the field.
func (b *jsonBuilder) StructTag(s string) *jsonBuilder {
	b.desc.Tag = s
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for json.
//
//	field.JSON("json", map[string]any{}).
//		SchemaType(map[string]string{
//			dialect.Postgres: "jsonb",
//		})
func (b *jsonBuilder) SchemaType(types map[string]string) *jsonBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *jsonBuilder) Annotations(annotations ...schema.Annotation) *jsonBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *jsonBuilder) Descriptor() *Descriptor {
	return b.desc
}

// sliceBuilder is the builder for JSON slice fields.
type sliceBuilder[T any] struct {
	desc *Descriptor
}

// Default sets the default value of the field.
func (b *sliceBuilder[T]) Default(v []T) *sliceBuilder[T] {
	b.desc.Default = v
	return b
}

// Validate adds a validator for this field. Operation fails if the validation fails.
func (b *sliceBuilder[T]) Validate(fn func([]T) error) *sliceBuilder[T] {
	b.desc.Validators = append(b.desc.Validators, fn)
	return b
}

// Nillable indicates that this field is a nillable.
func (b *sliceBuilder[T]) Nillable() *sliceBuilder[T] {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *sliceBuilder[T]) Optional() *sliceBuilder[T] {
	b.desc.Optional = true
	return b
}

// Sensitive fields not printable and not serializable.
func (b *sliceBuilder[T]) Sensitive() *sliceBuilder[T] {
	b.desc.Sensitive = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *sliceBuilder[T]) Immutable() *sliceBuilder[T] {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *sliceBuilder[T]) Comment(c string) *sliceBuilder[T] {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *sliceBuilder[T]) Deprecated(reason ...string) *sliceBuilder[T] {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *sliceBuilder[T]) StructTag(s string) *sliceBuilder[T] {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *sliceBuilder[T]) StorageKey(key string) *sliceBuilder[T] {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect).
func (b *sliceBuilder[T]) SchemaType(types map[string]string) *sliceBuilder[T] {
	b.desc.SchemaType = types
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *sliceBuilder[T]) Annotations(annotations ...schema.Annotation) *sliceBuilder[T] {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *sliceBuilder[T]) Descriptor() *Descriptor {
	return b.desc
}

// EnumValues defines the interface for getting the enum values.
type EnumValues interface {
	Values() []string
}

// enumBuilder is the builder for enum fields.
type enumBuilder struct {
	desc *Descriptor
}

// Values adds the given values to the enum values.
//
//	field.Enum("priority").
//		Values("low", "mid", "high")
func (b *enumBuilder) Values(values ...string) *enumBuilder {
	for _, v := range values {
		b.desc.Enums = append(b.desc.Enums, struct{ N, V string }{V: v})
	}
	return b
}

// NamedValues adds the given name, value pairs to the enum values. A name
// defines the Go identifier of the generated constant, and a value is the
// value stored in the database.
//
//	field.Enum("priority").
//		NamedValues(
//			"Low", "LOW",
//			"High", "HIGH",
//		)
func (b *enumBuilder) NamedValues(namevalue ...string) *enumBuilder {
	if len(namevalue)%2 == 1 {
		b.desc.err(errors.New("Enum.NamedValues: odd argument count"))
		return b
	}
	for i := 0; i < len(namevalue); i += 2 {
		b.desc.Enums = append(b.desc.Enums, struct{ N, V string }{N: namevalue[i], V: namevalue[i+1]})
	}
	return b
}

// Default sets the default value of the field.
func (b *enumBuilder) Default(value string) *enumBuilder {
	b.desc.Default = value
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *enumBuilder) Nillable() *enumBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *enumBuilder) Optional() *enumBuilder {
	b.desc.Optional = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *enumBuilder) Immutable() *enumBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *enumBuilder) Comment(c string) *enumBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *enumBuilder) Deprecated(reason ...string) *enumBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *enumBuilder) StructTag(s string) *enumBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *enumBuilder) StorageKey(key string) *enumBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for enum.
func (b *enumBuilder) SchemaType(types map[string]string) *enumBuilder {
	b.desc.SchemaType = types
	return b
}

// GoType overrides the default Go type with a custom one. The given
// type must implement the EnumValues interface, and its values are
// added to the enum values.
//
//	field.Enum("role").
//		GoType(role.Unknown)
func (b *enumBuilder) GoType(ev EnumValues) *enumBuilder {
	b.desc.goType(ev)
	b.Values(ev.Values()...)
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *enumBuilder) Annotations(annotations ...schema.Annotation) *enumBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *enumBuilder) Descriptor() *Descriptor {
	b.desc.checkGoType(stringType)
	return b.desc
}

// uuidBuilder is the builder for uuid fields.
type uuidBuilder struct {
	desc *Descriptor
}

// Unique makes the field unique within all vertices of this type.
func (b *uuidBuilder) Unique() *uuidBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the function that is applied to set the default value
// of the field on creation. For example:
//
//	field.UUID("id", uuid.UUID{}).
//		Default(uuid.New)
func (b *uuidBuilder) Default(fn any) *uuidBuilder {
	typ := reflect.TypeOf(fn)
	if typ == nil || typ.Kind() != reflect.Func || typ.NumIn() != 0 || typ.NumOut() != 1 || typ.Out(0).String() != b.desc.Info.Ident {
		b.desc.err(fmt.Errorf("expect type (func() %s) for uuid default value", b.desc.Info.Ident))
		return b
	}
	b.desc.Default = fn
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *uuidBuilder) Nillable() *uuidBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *uuidBuilder) Optional() *uuidBuilder {
	b.desc.Optional = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *uuidBuilder) Immutable() *uuidBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *uuidBuilder) Comment(c string) *uuidBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *uuidBuilder) Deprecated(reason ...string) *uuidBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *uuidBuilder) StructTag(s string) *uuidBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *uuidBuilder) StorageKey(key string) *uuidBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType overrides the default database type with a custom
// schema type (per dialect) for uuid.
//
//	field.UUID("id", uuid.UUID{}).
//		SchemaType(map[string]string{
//			dialect.Postgres: "uuid",
//		})
func (b *uuidBuilder) SchemaType(types map[string]string) *uuidBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *uuidBuilder) Annotations(annotations ...schema.Annotation) *uuidBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *uuidBuilder) Descriptor() *Descriptor {
	return b.desc
}

// otherBuilder is the builder for other fields.
type otherBuilder struct {
	desc *Descriptor
}

// Unique makes the field unique within all vertices of this type.
func (b *otherBuilder) Unique() *otherBuilder {
	b.desc.Unique = true
	return b
}

// Default sets the default value of the field. The given value must
// match the field type, or be a zero-argument function that returns it.
func (b *otherBuilder) Default(v any) *otherBuilder {
	b.desc.Default = v
	t := reflect.TypeOf(v)
	rt := b.desc.Info.RType.rtype
	switch {
	case t == nil:
		b.desc.err(errors.New("invalid default value"))
	case t == rt:
	case t.Kind() == reflect.Func && t.NumIn() == 0 && t.NumOut() == 1 && t.Out(0) == rt:
	default:
		b.desc.err(errors.New("invalid default value"))
	}
	return b
}

// Nillable indicates that this field is a nillable.
// Unlike "Optional" only fields, "Nillable" fields are pointers in the generated struct.
func (b *otherBuilder) Nillable() *otherBuilder {
	b.desc.Nillable = true
	return b
}

// Optional indicates that this field is optional on create.
// Unlike edges, fields are required by default.
func (b *otherBuilder) Optional() *otherBuilder {
	b.desc.Optional = true
	return b
}

// Sensitive fields not printable and not serializable.
func (b *otherBuilder) Sensitive() *otherBuilder {
	b.desc.Sensitive = true
	return b
}

// Immutable indicates that this field cannot be updated.
func (b *otherBuilder) Immutable() *otherBuilder {
	b.desc.Immutable = true
	return b
}

// Comment sets the comment of the field.
func (b *otherBuilder) Comment(c string) *otherBuilder {
	b.desc.Comment = c
	return b
}

// Deprecated marks the field as deprecated.
func (b *otherBuilder) Deprecated(reason ...string) *otherBuilder {
	b.desc.Deprecated = true
	b.desc.DeprecatedReason = strings.Join(reason, " ")
	return b
}

// StructTag sets the struct tag of the field.
func (b *otherBuilder) StructTag(s string) *otherBuilder {
	b.desc.Tag = s
	return b
}

// StorageKey sets the storage key of the field.
// In SQL dialects is the column name and Gremlin is the property.
func (b *otherBuilder) StorageKey(key string) *otherBuilder {
	b.desc.StorageKey = key
	return b
}

// SchemaType sets the database type of the field. Unlike other fields,
// this option is mandatory for fields of type Other, because their
// database type cannot be inferred from the Go type.
//
//	field.Other("duration", &Duration{}).
//		SchemaType(map[string]string{
//			dialect.Postgres: "interval",
//		})
func (b *otherBuilder) SchemaType(types map[string]string) *otherBuilder {
	b.desc.SchemaType = types
	return b
}

// Annotations adds a list of annotations to the field object to be used by
// codegen extensions.
func (b *otherBuilder) Annotations(annotations ...schema.Annotation) *otherBuilder {
	b.desc.Annotations = append(b.desc.Annotations, annotations...)
	return b
}

// Descriptor implements the velox.Field interface by returning its descriptor.
func (b *otherBuilder) Descriptor() *Descriptor {
	if len(b.desc.SchemaType) == 0 {
		b.desc.err(errors.New("expect SchemaType option to be set for other fields"))
	}
	return b.desc
}

// A Descriptor for field configuration.
type Descriptor struct {
	Tag              string                  // struct tag.
	Size             int                     // varchar size.
	Name             string                  // field name.
	Info             *TypeInfo               // field type info.
	ValueScanner     any                     // custom field codec.
	Unique           bool                    // unique index of field.
	Nillable         bool                    // nillable struct field.
	Optional         bool                    // nullable field in database.
	Immutable        bool                    // create only field.
	Default          any                     // default value on create.
	UpdateDefault    any                     // default value on update.
	Validators       []any                   // validator functions.
	StorageKey       string                  // sql column or gremlin property.
	Enums            []struct{ N, V string } // enum values.
	Sensitive        bool                    // sensitive info string field.
	SchemaType       map[string]string       // override the schema type.
	Annotations      []schema.Annotation     // field annotations.
	Comment          string                  // field comment.
	Deprecated       bool                    // deprecated field.
	DeprecatedReason string                  // reason of the deprecated field.
	Err              error
}

// maxStringSize is the column size assigned to text fields.
const maxStringSize = 1<<31 - 1

var (
	boolType   = reflect.TypeOf(false)
	timeType   = reflect.TypeOf(time.Time{})
	bytesType  = reflect.TypeOf([]byte(nil))
	stringType = reflect.TypeOf("")
)

func (d *Descriptor) err(err error) {
	if d.Err == nil {
		d.Err = err
	}
}

// goType sets the custom Go type information of the descriptor.
// The type is checked against the expected base type only when the
// descriptor is built, because an external ValueScanner may be
// attached after this call.
func (d *Descriptor) goType(typ any) {
	t := reflect.TypeOf(typ)
	if t == nil {
		d.err(errors.New("expect a Go value as type but got nil"))
		return
	}
	tv := indirect(t)
	d.Info.Ident = t.String()
	d.Info.PkgPath = tv.PkgPath()
	d.Info.RType = rtypeOf(t)
	switch t.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		d.Info.Nillable = true
	default:
		d.Info.Nillable = false
	}
	if d.Info.PkgPath != "" {
		d.Info.PkgName = path.Base(d.Info.PkgPath)
	}
}

// checkGoType ensures the custom Go type is either based on the expected
// base type, or provides a way to convert its values to database values.
func (d *Descriptor) checkGoType(expectType reflect.Type) {
	r := d.Info.RType
	if r == nil || r.rtype == nil {
		return
	}
	t := r.rtype
	switch {
	case t.Kind() == expectType.Kind() && t.ConvertibleTo(expectType):
	case d.ValueScanner != nil:
	case t.Implements(valueScannerType):
	case reflect.PointerTo(t).Implements(valueScannerType):
	default:
		d.err(fmt.Errorf("GoType must be a %q type, ValueScanner or provide an external ValueScanner", expectType))
	}
}

// checkDefaultFunc ensures the default functions of the descriptor
// return a value that is assignable to the field type.
func (d *Descriptor) checkDefaultFunc(expectType reflect.Type) {
	if d.Info.RType != nil && d.Info.RType.rtype != nil {
		expectType = d.Info.RType.rtype
	}
	for _, fn := range []any{d.Default, d.UpdateDefault} {
		if fn == nil {
			continue
		}
		t := reflect.TypeOf(fn)
		if t.Kind() != reflect.Func {
			continue
		}
		if t.NumIn() != 0 || t.NumOut() != 1 || !t.Out(0).AssignableTo(expectType) {
			d.err(fmt.Errorf("expect type (func() %s) for default value", expectType))
		}
	}
}

// pkgPath returns the package path of the given type, unwrapping
// pointers, slices and maps until a named element is found.
func pkgPath(t reflect.Type) string {
	pkg := t.PkgPath()
	if pkg != "" {
		return pkg
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Pointer, reflect.Map:
		return pkgPath(t.Elem())
	}
	return pkg
}

// ValueScanner is the interface that groups the Value
// and the Scan methods.
type ValueScanner interface {
	driver.Valuer
	sql.Scanner
}

// TypeValueScanner provides an API for converting a field value to and
// from a database value. It can be attached to a field with the builder
// ValueScanner option.
type TypeValueScanner[T any] interface {
	// Value returns the driver.Value representation of the given type.
	Value(T) (driver.Value, error)
	// ScanValue returns a new ValueScanner that functions as an
	// intermediate result between a database value and a field value.
	ScanValue() ValueScanner
	// FromValue returns the field instance from the ScanValue above
	// after the database scan was completed.
	FromValue(driver.Value) (T, error)
}

// ValueScannerFunc implements the TypeValueScanner interface with
// (generic) functions. The S type must be a valid ValueScanner type,
// such as the sql.Null types.
type ValueScannerFunc[T any, S ValueScanner] struct {
	V func(T) (driver.Value, error)
	S func(S) (T, error)
}

// Value implements the TypeValueScanner.Value method.
func (f ValueScannerFunc[T, S]) Value(t T) (driver.Value, error) {
	return f.V(t)
}

// ScanValue implements the TypeValueScanner.ScanValue method.
func (f ValueScannerFunc[T, S]) ScanValue() ValueScanner {
	t := reflect.TypeOf(f.S).In(0)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return reflect.New(t).Interface().(ValueScanner)
}

// FromValue implements the TypeValueScanner.FromValue method.
func (f ValueScannerFunc[T, S]) FromValue(v driver.Value) (t T, err error) {
	s, ok := v.(S)
	if !ok {
		return t, fmt.Errorf("unexpected input value type %T", v)
	}
	return f.S(s)
}

// TextValueScanner implements the TypeValueScanner for types that
// implement the encoding.TextMarshaler and TextUnmarshaler interfaces.
type TextValueScanner[T encoding.TextMarshaler] struct{}

// Value implements the TypeValueScanner.Value method.
func (TextValueScanner[T]) Value(t T) (driver.Value, error) {
	v, err := t.MarshalText()
	return v, err
}

// ScanValue implements the TypeValueScanner.ScanValue method.
func (TextValueScanner[T]) ScanValue() ValueScanner {
	return &sql.NullString{}
}

// FromValue implements the TypeValueScanner.FromValue method.
func (TextValueScanner[T]) FromValue(v driver.Value) (t T, err error) {
	s, ok := v.(*sql.NullString)
	if !ok {
		return t, fmt.Errorf("unexpected input value type %T", v)
	}
	if rt := reflect.TypeOf(t); rt != nil && rt.Kind() == reflect.Pointer {
		t = reflect.New(rt.Elem()).Interface().(T)
	}
	if !s.Valid {
		return t, nil
	}
	if u, ok := any(t).(encoding.TextUnmarshaler); ok {
		err = u.UnmarshalText([]byte(s.String))
	}
	return t, err
}

// BinaryValueScanner implements the TypeValueScanner for types that
// implement the encoding.BinaryMarshaler and BinaryUnmarshaler interfaces.
type BinaryValueScanner[T encoding.BinaryMarshaler] struct{}

// Value implements the TypeValueScanner.Value method.
func (BinaryValueScanner[T]) Value(t T) (driver.Value, error) {
	v, err := t.MarshalBinary()
	return v, err
}

// ScanValue implements the TypeValueScanner.ScanValue method.
func (BinaryValueScanner[T]) ScanValue() ValueScanner {
	return &sql.NullString{}
}

// FromValue implements the TypeValueScanner.FromValue method.
func (BinaryValueScanner[T]) FromValue(v driver.Value) (t T, err error) {
	s, ok := v.(*sql.NullString)
	if !ok {
		return t, fmt.Errorf("unexpected input value type %T", v)
	}
	if rt := reflect.TypeOf(t); rt != nil && rt.Kind() == reflect.Pointer {
		t = reflect.New(rt.Elem()).Interface().(T)
	}
	if !s.Valid {
		return t, nil
	}
	if u, ok := any(t).(encoding.BinaryUnmarshaler); ok {
		err = u.UnmarshalBinary([]byte(s.String))
	}
	return t, err
}
