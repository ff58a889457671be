package modelgraph

import (
	"fmt"
	"reflect"
	"time"
	"unsafe"

	"github.com/viant/modelgraph/tags"
	"github.com/viant/modelgraph/visitor"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

var (
	modelType    = reflect.TypeOf((*Model)(nil)).Elem()
	hasRefsType  = reflect.TypeOf((*HasRefs)(nil)).Elem()
	sequenceType = reflect.TypeOf((*Sequence)(nil)).Elem()
	mappingType  = reflect.TypeOf((*Mapping)(nil)).Elem()
	timeType     = reflect.TypeOf(time.Time{})
)

var (
	types     = visitor.NewSyncMap[reflect.Type, *Type]()
	refHolder = visitor.NewSyncMap[reflect.Type, bool]()
)

type (
	//Attribute represents a struct backed model attribute
	Attribute struct {
		Name   string
		Ref    bool
		Tag    reflect.StructTag
		Type   reflect.Type
		fields []*xunsafe.Field
		depth  int
	}

	//Type represents struct type attribute metadata, resolved once per reflect.Type
	Type struct {
		rType      reflect.Type
		attributes []*Attribute
		refs       []*Attribute
		refNames   []string
		index      map[string]int
		isModel    bool
	}
)

// Value returns attribute value for supplied struct pointer, nil if an embedded pointer on the path is nil
func (a *Attribute) Value(ptr unsafe.Pointer) interface{} {
	last := len(a.fields) - 1
	for i := 0; i < last; i++ {
		field := a.fields[i]
		ptr = field.Pointer(ptr)
		if field.Type.Kind() == reflect.Ptr {
			if ptr = xunsafe.DerefPointer(ptr); ptr == nil {
				return nil
			}
		}
	}
	return a.fields[last].Value(ptr)
}

// Type returns underlying struct type
func (t *Type) Type() reflect.Type {
	return t.rType
}

// IsModel returns true if pointer to the type implements Model
func (t *Type) IsModel() bool {
	return t.isModel
}

// Attributes returns all attributes in declaration order
func (t *Type) Attributes() []*Attribute {
	return t.attributes
}

// Refs returns reference bearing attributes in declaration order
func (t *Type) Refs() []*Attribute {
	return t.refs
}

// RefNames returns reference bearing attribute names
func (t *Type) RefNames() []string {
	return t.refNames
}

// Lookup returns an attribute by name or nil
func (t *Type) Lookup(name string) *Attribute {
	index, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.attributes[index]
}

// TypeOf returns attribute metadata for a struct or pointer to struct type
func TypeOf(rType reflect.Type) (*Type, error) {
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got %v", rType)
	}
	if ret, ok := types.Get(structType); ok {
		return ret, nil
	}
	ret, err := newType(structType)
	if err != nil {
		return nil, err
	}
	ret, _ = types.PutIfAbsent(structType, ret)
	return ret, nil
}

// MustTypeOf returns attribute metadata or panics
func MustTypeOf(rType reflect.Type) *Type {
	ret, err := TypeOf(rType)
	if err != nil {
		panic(err)
	}
	return ret
}

func newType(structType reflect.Type) (*Type, error) {
	ret := &Type{
		rType:   structType,
		index:   map[string]int{},
		isModel: reflect.PointerTo(structType).Implements(modelType),
	}
	var candidates []*Attribute
	if err := appendAttributes(&candidates, structType, nil, 0, map[reflect.Type]bool{structType: true}); err != nil {
		return nil, fmt.Errorf("failed to resolve %v attributes: %w", structType, err)
	}
	shallowest := map[string]int{}
	for _, candidate := range candidates {
		if depth, ok := shallowest[candidate.Name]; !ok || candidate.depth < depth {
			shallowest[candidate.Name] = candidate.depth
		}
	}
	for _, candidate := range candidates {
		if candidate.depth != shallowest[candidate.Name] {
			continue
		}
		if _, ok := ret.index[candidate.Name]; ok {
			continue
		}
		ret.index[candidate.Name] = len(ret.attributes)
		ret.attributes = append(ret.attributes, candidate)
		if candidate.Ref {
			ret.refs = append(ret.refs, candidate)
			ret.refNames = append(ret.refNames, candidate.Name)
		}
	}
	return ret, nil
}

func appendAttributes(dest *[]*Attribute, structType reflect.Type, ancestors []*xunsafe.Field, depth int, embedded map[reflect.Type]bool) error {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		refTag, err := tags.ParseRef(field.Tag)
		if err != nil {
			return fmt.Errorf("invalid field %v tag: %w", field.Name, err)
		}
		xField := xunsafe.NewField(field)
		fields := append(append([]*xunsafe.Field{}, ancestors...), xField)
		if field.Anonymous {
			embeddedType := ensureStruct(field.Type)
			if embeddedType != nil && (field.Type.Kind() == reflect.Struct || !field.Type.Implements(modelType)) {
				if embedded[embeddedType] {
					continue
				}
				embedded[embeddedType] = true
				if err = appendAttributes(dest, embeddedType, fields, depth+1, embedded); err != nil {
					return err
				}
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		name := refTag.Name
		if name == "" {
			name = text.DetectCaseFormat(field.Name).Format(field.Name, text.CaseFormatLowerUnderscore)
		}
		attribute := &Attribute{
			Name:   name,
			Tag:    field.Tag,
			Type:   field.Type,
			fields: fields,
			depth:  depth,
		}
		if !refTag.Ignore {
			attribute.Ref = refTag.Include || holdsRefs(field.Type)
		}
		*dest = append(*dest, attribute)
	}
	return nil
}

// holdsRefs returns cached canHoldRefs result for supplied static type
func holdsRefs(rType reflect.Type) bool {
	if ret, ok := refHolder.Get(rType); ok {
		return ret
	}
	ret := canHoldRefs(rType, map[reflect.Type]bool{})
	refHolder.Put(rType, ret)
	return ret
}

// canHoldRefs returns true if a value of the supplied static type can contain a Model
func canHoldRefs(rType reflect.Type, visiting map[reflect.Type]bool) bool {
	if rType.Implements(modelType) || rType.Implements(hasRefsType) ||
		rType.Implements(sequenceType) || rType.Implements(mappingType) {
		return true
	}
	switch rType.Kind() {
	case reflect.Interface:
		return true
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return canHoldRefs(rType.Elem(), visiting)
	case reflect.Map:
		return canHoldRefs(rType.Key(), visiting) || canHoldRefs(rType.Elem(), visiting)
	case reflect.Struct:
		if rType == timeType {
			return false
		}
		if reflect.PointerTo(rType).Implements(modelType) || reflect.PointerTo(rType).Implements(hasRefsType) {
			return true
		}
		if visiting[rType] {
			return true //recursive type, assume it can
		}
		visiting[rType] = true
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			if !field.IsExported() && !field.Anonymous {
				continue
			}
			if canHoldRefs(field.Type, visiting) {
				return true
			}
		}
	}
	return false
}

func ensureStruct(rType reflect.Type) reflect.Type {
	if rType == nil {
		return nil
	}
	switch rType.Kind() {
	case reflect.Struct:
		return rType
	case reflect.Ptr:
		if rType.Elem().Kind() == reflect.Struct {
			return rType.Elem()
		}
	}
	return nil
}
