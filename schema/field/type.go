package field

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
)

// A Type represents a field type.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeJSON
	TypeUUID
	TypeBytes
	TypeEnum
	TypeString
	TypeOther
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint
	TypeUint64
	TypeFloat32
	TypeFloat64
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time.Time",
	TypeJSON:    "json.RawMessage",
	TypeUUID:    "[16]byte",
	TypeBytes:   "[]byte",
	TypeEnum:    "string",
	TypeString:  "string",
	TypeOther:   "other",
	TypeInt:     "int",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeUint:    "uint",
	TypeUint8:   "uint8",
	TypeUint16:  "uint16",
	TypeUint32:  "uint32",
	TypeUint64:  "uint64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
}

var constNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "TypeBool",
	TypeTime:    "TypeTime",
	TypeJSON:    "TypeJSON",
	TypeUUID:    "TypeUUID",
	TypeBytes:   "TypeBytes",
	TypeEnum:    "TypeEnum",
	TypeString:  "TypeString",
	TypeOther:   "TypeOther",
	TypeInt:     "TypeInt",
	TypeInt8:    "TypeInt8",
	TypeInt16:   "TypeInt16",
	TypeInt32:   "TypeInt32",
	TypeInt64:   "TypeInt64",
	TypeUint:    "TypeUint",
	TypeUint8:   "TypeUint8",
	TypeUint16:  "TypeUint16",
	TypeUint32:  "TypeUint32",
	TypeUint64:  "TypeUint64",
	TypeFloat32: "TypeFloat32",
	TypeFloat64: "TypeFloat64",
}

// String returns the string representation of a type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type if known type.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Numeric reports if the given type is a numeric type.
func (t Type) Numeric() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// Float reports if the given type is a float type.
func (t Type) Float() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// Integer reports if the given type is an integral type.
func (t Type) Integer() bool {
	return t.Numeric() && !t.Float()
}

// ConstName returns the constant name of a field type.
// It's used by the codegen templates.
func (t Type) ConstName() string {
	if !t.Valid() {
		return typeNames[TypeInvalid]
	}
	return constNames[t]
}

// TypeInfo holds the information regarding field type.
// Used by complex types like JSON and Bytes.
type TypeInfo struct {
	Type     Type
	Ident    string
	PkgPath  string // import path.
	PkgName  string // local package name.
	Nillable bool   // slices or pointers.
	RType    *RType
}

// String returns the string representation of a type.
func (t TypeInfo) String() string {
	switch {
	case t.Ident != "":
		return t.Ident
	case t.Type < endTypes:
		return typeNames[t.Type]
	default:
		return fmt.Sprintf("Type(%d)", t.Type)
	}
}

// Valid reports if the given type if known type.
func (t TypeInfo) Valid() bool {
	return t.Type.Valid()
}

// Numeric reports if the given type is a numeric type.
func (t TypeInfo) Numeric() bool {
	return t.Type.Numeric()
}

var (
	stringerType     = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	valuerType       = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
	scannerType      = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
	valueScannerType = reflect.TypeOf((*ValueScanner)(nil)).Elem()
)

// Valuer reports if the given type implements the driver.Valuer interface.
func (t TypeInfo) Valuer() bool {
	return t.RType.implements(valuerType)
}

// ValueScanner reports if the given type implements the
// driver.Valuer and the sql.Scanner interfaces.
func (t TypeInfo) ValueScanner() bool {
	return t.RType.implements(valuerType) && t.RType.implements(scannerType)
}

// Stringer reports if the given type implements the fmt.Stringer interface.
func (t TypeInfo) Stringer() bool {
	return t.RType.implements(stringerType)
}

// RType holds a serializable reflect.Type information of a Go value.
// Used by the entity codegen.
type RType struct {
	Name    string // reflect.Type.Name
	Ident   string // reflect.Type.String
	Kind    reflect.Kind
	PkgPath string
	Methods map[string]struct{ In, Out []*RType }
	// Used only for in-package type checks.
	rtype reflect.Type
}

// rtypeOf returns the RType of the given reflect.Type.
// Methods are collected from the pointer type, so value
// and pointer receiver methods are both visible.
func rtypeOf(t reflect.Type) *RType {
	tv := indirect(t)
	rt := &RType{
		rtype:   t,
		Name:    tv.Name(),
		Ident:   t.String(),
		Kind:    t.Kind(),
		PkgPath: tv.PkgPath(),
	}
	pt := t
	if pt.Kind() != reflect.Pointer {
		pt = reflect.PointerTo(t)
	}
	n := pt.NumMethod()
	rt.Methods = make(map[string]struct{ In, Out []*RType }, n)
	for i := 0; i < n; i++ {
		m := pt.Method(i)
		in := make([]*RType, m.Type.NumIn()-1)
		for j := range in {
			in[j] = argType(m.Type.In(j + 1))
		}
		out := make([]*RType, m.Type.NumOut())
		for j := range out {
			out[j] = argType(m.Type.Out(j))
		}
		rt.Methods[m.Name] = struct{ In, Out []*RType }{in, out}
	}
	return rt
}

func argType(t reflect.Type) *RType {
	tv := indirect(t)
	return &RType{Name: tv.Name(), Ident: t.String(), Kind: t.Kind(), PkgPath: tv.PkgPath()}
}

// TypeEqual reports if the underlying type is equal to the RType
// after pointer indirections.
func (r *RType) TypeEqual(t reflect.Type) bool {
	tv := indirect(t)
	return r.Name == tv.Name() && r.Kind == t.Kind() && r.PkgPath == tv.PkgPath()
}

// RType returns the string value of the in-package reflect.Type.
func (r *RType) String() string {
	if r != nil {
		return r.Ident
	}
	return "invalid"
}

// IsPtr reports if the reflect-type is a pointer type.
func (r *RType) IsPtr() bool {
	return r != nil && r.Kind == reflect.Pointer
}

// Implements reports whether the RType implements the given interface type.
func (r *RType) Implements(typ reflect.Type) bool {
	n := typ.NumMethod()
	for i := 0; i < n; i++ {
		m0 := typ.Method(i)
		m1, ok := r.Methods[m0.Name]
		if !ok || len(m1.In) != m0.Type.NumIn() || len(m1.Out) != m0.Type.NumOut() {
			return false
		}
		for j := range m1.In {
			if !m1.In[j].TypeEqual(m0.Type.In(j)) {
				return false
			}
		}
		for j := range m1.Out {
			if !m1.Out[j].TypeEqual(m0.Type.Out(j)) {
				return false
			}
		}
	}
	return true
}

func (r *RType) implements(typ reflect.Type) bool {
	return r != nil && r.Implements(typ)
}

// indirect returns the type at the end of indirection.
func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
