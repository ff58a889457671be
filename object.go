package modelgraph

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Object represents a struct value bound to its attribute metadata
type Object struct {
	objType *Type
	value   interface{}
	ptr     unsafe.Pointer
}

// Type returns object type
func (o *Object) Type() *Type {
	return o.objType
}

// Value returns underlying value
func (o *Object) Value() interface{} {
	return o.value
}

// Pointer returns underlying struct pointer
func (o *Object) Pointer() unsafe.Pointer {
	return o.ptr
}

// RefNames returns reference bearing attribute names
func (o *Object) RefNames() []string {
	return o.objType.refNames
}

// RefValue returns reference bearing attribute value
func (o *Object) RefValue(name string) interface{} {
	attr := o.objType.Lookup(name)
	if attr == nil || !attr.Ref {
		return nil
	}
	return attr.Value(o.ptr)
}

// Attribute returns attribute value for supplied name
func (o *Object) Attribute(name string) (interface{}, error) {
	attr := o.objType.Lookup(name)
	if attr == nil {
		return nil, fmt.Errorf("failed to lookup attribute %v at %s", name, o.objType.rType.String())
	}
	return attr.Value(o.ptr), nil
}

// WithValue binds a struct pointer or struct value to the type, struct values are copied
func (t *Type) WithValue(value interface{}) *Object {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Struct {
		rPointer := reflect.New(rValue.Type())
		rPointer.Elem().Set(rValue)
		value = rPointer.Interface()
	}
	return &Object{objType: t, value: value, ptr: xunsafe.AsPointer(value)}
}

// ObjectOf binds supplied struct value to its attribute metadata
func ObjectOf(value interface{}) (*Object, error) {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Ptr && rValue.IsNil() {
		return nil, fmt.Errorf("expected non nil value, got %T", value)
	}
	objType, err := TypeOf(reflect.TypeOf(value))
	if err != nil {
		return nil, err
	}
	return objType.WithValue(value), nil
}

// RefsOf returns reference bearing attributes capability of supplied value.
// Values implementing HasRefs are returned as is, struct values are resolved with TypeOf;
// a non model struct without reference bearing attributes has no capability.
func RefsOf(value interface{}) (HasRefs, bool) {
	if refs, ok := value.(HasRefs); ok {
		return refs, true
	}
	return objectOf(value)
}

func objectOf(value interface{}) (*Object, bool) {
	rType := reflect.TypeOf(value)
	if ensureStruct(rType) == nil {
		return nil, false
	}
	if rType.Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil() {
		return nil, false
	}
	objType := MustTypeOf(rType)
	if len(objType.refs) == 0 && !objType.isModel {
		return nil, false
	}
	return objType.WithValue(value), true
}
