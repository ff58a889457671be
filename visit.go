package modelgraph

import (
	"reflect"

	"github.com/viant/modelgraph/visitor"
)

type valueKind int

const (
	otherKind valueKind = iota
	scalarKind
	sequenceKind
	mappingKind
	modelKind
	compositeKind
)

// Visit invokes fn for every model found while walking value. Sequences, mappings and
// non model values with reference bearing attributes are descended into;
// models are terminal, their attributes are never walked.
func Visit(value interface{}, fn func(Model)) {
	kind, refs := kindOf(value)
	switch kind {
	case sequenceKind:
		elements, err := visitor.AnySliceVisitorOf(value)
		if err != nil {
			return
		}
		for _, element := range elements {
			Visit(element, fn)
		}
	case mappingKind:
		entries, err := visitor.AnyMapVisitorOf(value)
		if err != nil {
			return
		}
		for key, element := range entries {
			Visit(key, fn)
			Visit(element, fn)
		}
	case modelKind:
		fn(value.(Model))
	case compositeKind:
		visitRefs(refs, fn)
	}
}

// VisitImmediate invokes fn for every model directly referenced by value's reference bearing
// attributes, without descending into any of these models; the same model may be visited more than once.
// The passed in value is never visited itself.
func VisitImmediate(value interface{}, fn func(Model)) {
	refs, ok := RefsOf(value)
	if !ok {
		if _, isModel := value.(Model); isModel {
			return
		}
		Visit(value, fn)
		return
	}
	visitRefs(refs, fn)
}

func visitRefs(refs HasRefs, fn func(Model)) {
	if object, ok := refs.(*Object); ok {
		for _, attr := range object.objType.refs {
			Visit(attr.Value(object.ptr), fn)
		}
		return
	}
	for _, name := range refs.RefNames() {
		Visit(refs.RefValue(name), fn)
	}
}

// kindOf classifies value, the order of checks matches Visit precedence:
// scalars, sequences, mappings, then models and composites
func kindOf(value interface{}) (valueKind, HasRefs) {
	switch value.(type) {
	case nil, bool, string, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr, float32, float64, complex64, complex128:
		return scalarKind, nil
	case []interface{}, Sequence:
		return sequenceKind, nil
	case map[string]interface{}, Mapping:
		return mappingKind, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Slice, reflect.Array:
		if !holdsRefs(rValue.Type().Elem()) {
			return scalarKind, nil
		}
		return sequenceKind, nil
	case reflect.Map:
		mapType := rValue.Type()
		if !holdsRefs(mapType.Key()) && !holdsRefs(mapType.Elem()) {
			return scalarKind, nil
		}
		return mappingKind, nil
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return otherKind, nil
		}
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return otherKind, nil
	default:
		if _, ok := value.(Model); !ok && isScalarKind(rValue.Kind()) {
			return scalarKind, nil
		}
	}
	if _, ok := value.(Model); ok {
		return modelKind, nil
	}
	if refs, ok := RefsOf(value); ok {
		return compositeKind, refs
	}
	return otherKind, nil
}

func isScalarKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
