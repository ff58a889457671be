package encoding

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/viant/modelgraph"
	"github.com/viant/modelgraph/registry"
	"github.com/viant/modelgraph/visitor"
	"github.com/viant/tagly/format"
)

const maxDepth = 64

// Marshaller serializes models reachable from supplied values
type Marshaller struct {
	registry   *registry.Registry
	discard    func(modelgraph.Model) bool
	timeLayout string
}

// Marshal returns references of all models reachable from supplied values,
// e.g. {"references":[{"type":"Plot","id":"p1","attributes":{"x_range":{"id":"r1"}}}]}
func (m *Marshaller) Marshal(values ...interface{}) ([]byte, error) {
	refs, err := m.collect(values...)
	if err != nil {
		return nil, err
	}
	return gojay.MarshalJSONObject(&document{references: refs})
}

func (m *Marshaller) collect(values ...interface{}) (references, error) {
	models := modelgraph.CollectFiltered(m.discard, values...)
	aSession := &session{Marshaller: m, collected: make(map[modelgraph.ID]bool, len(models))}
	for _, model := range models {
		aSession.collected[model.ID()] = true
	}
	ret := make(references, 0, len(models))
	for _, model := range models {
		ref, err := aSession.reference(model)
		if err != nil {
			return nil, err
		}
		ret = append(ret, ref)
	}
	return ret, nil
}

// session represents a single Marshal call, a model is referenced only if it was collected
type session struct {
	*Marshaller
	collected map[modelgraph.ID]bool
}

func (s *session) reference(model modelgraph.Model) (*reference, error) {
	typeName, err := s.registry.NameOf(model)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model %v: %w", model.ID(), err)
	}
	ret := &reference{typeName: typeName, id: model.ID(), attributes: &object{}}
	if source, err := modelgraph.ObjectOf(model); err == nil {
		if err = s.appendAttributes(ret.attributes, source, 0); err != nil {
			return nil, err
		}
		return ret, nil
	}
	if refs, ok := modelgraph.RefsOf(model); ok {
		for _, name := range refs.RefNames() {
			value, err := s.value(refs.RefValue(name), 0)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal %v.%v: %w", model.ID(), name, err)
			}
			ret.attributes.put(name, value)
		}
	}
	return ret, nil
}

func (s *session) appendAttributes(dest *object, source *modelgraph.Object, depth int) error {
	for _, attr := range source.Type().Attributes() {
		tag := attributeTag(attr)
		if tag.Ignore {
			continue
		}
		name := attr.Name
		if tag.Name != "" {
			name = tag.Name
		}
		raw := attr.Value(source.Pointer())
		if tag.Omitempty && isZero(raw) {
			continue
		}
		layout := s.timeLayout
		if tag.TimeLayout != "" {
			layout = tag.TimeLayout
		}
		value, err := s.valueWithLayout(raw, depth+1, layout)
		if err != nil {
			return fmt.Errorf("failed to marshal %v: %w", name, err)
		}
		dest.put(name, value)
	}
	return nil
}

func (s *session) value(value interface{}, depth int) (interface{}, error) {
	return s.valueWithLayout(value, depth, s.timeLayout)
}

// valueWithLayout normalises value to one of: nil, string, bool, int64, uint64, float64, *refObject, *object, array.
// Models outside of the collected set, i.e. discarded or held by a non reference attribute, are normalised to nil.
func (s *session) valueWithLayout(value interface{}, depth int, layout string) (interface{}, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("value nesting exceeded %v levels", maxDepth)
	}
	switch actual := value.(type) {
	case nil:
		return nil, nil
	case modelgraph.Model:
		if isNil(actual) || !s.collected[actual.ID()] {
			return nil, nil
		}
		return &refObject{id: actual.ID()}, nil
	case time.Time:
		return actual.Format(layout), nil
	case *time.Time:
		if actual == nil {
			return nil, nil
		}
		return actual.Format(layout), nil
	case []byte:
		return base64.StdEncoding.EncodeToString(actual), nil
	case modelgraph.Sequence:
		ret := make(array, 0, actual.Len())
		for i := 0; i < actual.Len(); i++ {
			item, err := s.valueWithLayout(actual.At(i), depth+1, layout)
			if err != nil {
				return nil, err
			}
			ret = append(ret, item)
		}
		return ret, nil
	case modelgraph.Mapping:
		ret := &object{}
		for _, key := range actual.Keys() {
			item, err := s.valueWithLayout(actual.Get(key), depth+1, layout)
			if err != nil {
				return nil, err
			}
			ret.put(fmt.Sprintf("%v", key), item)
		}
		return ret, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Bool:
		return rValue.Bool(), nil
	case reflect.String:
		return rValue.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rValue.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rValue.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rValue.Float(), nil
	case reflect.Slice, reflect.Array:
		if rValue.Kind() == reflect.Slice && rValue.IsNil() {
			return nil, nil
		}
		ret := make(array, 0, rValue.Len())
		for i := 0; i < rValue.Len(); i++ {
			item, err := s.valueWithLayout(rValue.Index(i).Interface(), depth+1, layout)
			if err != nil {
				return nil, err
			}
			ret = append(ret, item)
		}
		return ret, nil
	case reflect.Map:
		if rValue.IsNil() {
			return nil, nil
		}
		ret := &object{}
		for _, key := range visitor.SortedKeys(rValue) {
			item, err := s.valueWithLayout(rValue.MapIndex(key).Interface(), depth+1, layout)
			if err != nil {
				return nil, err
			}
			ret.put(fmt.Sprintf("%v", key.Interface()), item)
		}
		return ret, nil
	case reflect.Ptr, reflect.Interface:
		if rValue.IsNil() {
			return nil, nil
		}
		if rValue.Elem().Kind() == reflect.Struct {
			return s.structValue(value, depth)
		}
		return s.valueWithLayout(rValue.Elem().Interface(), depth+1, layout)
	case reflect.Struct:
		return s.structValue(value, depth)
	}
	return nil, fmt.Errorf("unsupported value type: %T", value)
}

func (s *session) structValue(value interface{}, depth int) (interface{}, error) {
	source, err := modelgraph.ObjectOf(value)
	if err != nil {
		return nil, err
	}
	ret := &object{}
	if err = s.appendAttributes(ret, source, depth); err != nil {
		return nil, err
	}
	return ret, nil
}

var attributeTags = visitor.NewSyncMap[*modelgraph.Attribute, *format.Tag]()

func attributeTag(attr *modelgraph.Attribute) *format.Tag {
	if tag, ok := attributeTags.Get(attr); ok {
		return tag
	}
	tag, _ := format.Parse(attr.Tag)
	if tag == nil {
		tag = &format.Tag{}
	}
	attributeTags.Put(attr, tag)
	return tag
}

func isNil(model modelgraph.Model) bool {
	rValue := reflect.ValueOf(model)
	return rValue.Kind() == reflect.Ptr && rValue.IsNil()
}

func isZero(value interface{}) bool {
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}

// New creates a marshaller
func New(opts ...Option) *Marshaller {
	ret := &Marshaller{registry: registry.Default, timeLayout: DefaultTimeLayout}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Marshal returns references of all models reachable from supplied values using the default registry
func Marshal(values ...interface{}) ([]byte, error) {
	return New().Marshal(values...)
}
