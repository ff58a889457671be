package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapVisitorOf creates a Visitor for a map with string keys, visiting keys in ascending order
func MapVisitorOf[E any](aMap map[string]E) Visitor[string, E] {
	return func(yield func(key string, element E) bool) {
		keys := make([]string, 0, len(aMap))
		for k := range aMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !yield(k, aMap[k]) {
				return
			}
		}
	}
}

// MappingVisitorOf creates a Visitor for a Mapping, visiting keys in the order Keys returns them
func MappingVisitorOf(mapping Mapping) Visitor[interface{}, interface{}] {
	return func(yield func(key interface{}, element interface{}) bool) {
		for _, k := range mapping.Keys() {
			if !yield(k, mapping.Get(k)) {
				return
			}
		}
	}
}

// AnyMapVisitorOf dynamically creates a Visitor for any map or Mapping value.
// Go maps are visited in sorted key order.
func AnyMapVisitorOf(value interface{}) (Visitor[interface{}, interface{}], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		visit := MapVisitorOf[interface{}](actual)
		return func(yield func(key interface{}, element interface{}) bool) {
			visit(func(key string, element interface{}) bool {
				return yield(key, element)
			})
		}, nil
	case Mapping:
		return MappingVisitorOf(actual), nil
	}
	val := reflect.ValueOf(value)
	for val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	return func(yield func(key interface{}, element interface{}) bool) {
		keys := SortedKeys(val)
		for _, key := range keys {
			if !yield(key.Interface(), val.MapIndex(key).Interface()) {
				return
			}
		}
	}, nil
}

// SortedKeys returns map keys in a stable order
func SortedKeys(aMap reflect.Value) []reflect.Value {
	keys := aMap.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return lessKey(keys[i], keys[j])
	})
	return keys
}

func lessKey(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if !a.IsValid() || !b.IsValid() {
		return !a.IsValid() && b.IsValid()
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.Bool:
		return !a.Bool() && b.Bool()
	}
	return fmt.Sprintf("%v", a.Interface()) < fmt.Sprintf("%v", b.Interface())
}
