package visitor

import (
	"fmt"
	"reflect"
)

// SliceVisitorOf creates a Visitor for a typed slice
func SliceVisitorOf[E any](slice []E) Visitor[int, E] {
	return func(yield func(key int, element E) bool) {
		for i, elem := range slice {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// SequenceVisitorOf creates a Visitor for a Sequence
func SequenceVisitorOf(sequence Sequence) Visitor[int, interface{}] {
	return func(yield func(key int, element interface{}) bool) {
		for i := 0; i < sequence.Len(); i++ {
			if !yield(i, sequence.At(i)) {
				return
			}
		}
	}
}

// AnySliceVisitorOf dynamically creates a Visitor for any slice, array or Sequence value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, interface{}], error) {
	switch actual := value.(type) {
	case []interface{}:
		return SliceVisitorOf[interface{}](actual), nil
	case Sequence:
		return SequenceVisitorOf(actual), nil
	}
	val := reflect.ValueOf(value)
	for val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice, got %T", value)
	}
	return func(yield func(key int, element interface{}) bool) {
		for i := 0; i < val.Len(); i++ {
			if !yield(i, val.Index(i).Interface()) {
				return
			}
		}
	}, nil
}
