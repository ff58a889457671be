package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/viant/modelgraph"
)

var (
	//ErrNotFound is returned when a model class name is not registered
	ErrNotFound = errors.New("model class not found")
	//ErrConflict is returned when a model class name is already taken by another type
	ErrConflict = errors.New("model class name conflict")
)

var modelInterface = reflect.TypeOf((*modelgraph.Model)(nil)).Elem()

// Registry represents model class catalog
type Registry struct {
	mux     sync.RWMutex
	classes map[string]*Class
	names   map[reflect.Type]string
}

// Register registers supplied model class under its type name
func (r *Registry) Register(value interface{}) (*Class, error) {
	rType, err := modelStructType(value)
	if err != nil {
		return nil, err
	}
	return r.register(TypeName(rType), rType)
}

// RegisterAs registers supplied model class under supplied name
func (r *Registry) RegisterAs(name string, value interface{}) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("model class name was empty")
	}
	rType, err := modelStructType(value)
	if err != nil {
		return nil, err
	}
	return r.register(name, rType)
}

func (r *Registry) register(name string, rType reflect.Type) (*Class, error) {
	modelType, err := modelgraph.TypeOf(rType)
	if err != nil {
		return nil, err
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if prev, ok := r.classes[name]; ok {
		if prev.rType == rType {
			return prev, nil
		}
		return nil, fmt.Errorf("%w: '%v' is registered with %v, got %v", ErrConflict, name, prev.rType, rType)
	}
	class := &Class{
		Name:      name,
		Qualified: reflect.PointerTo(rType).Implements(qualifierType),
		rType:     rType,
		modelType: modelType,
	}
	r.classes[name] = class
	if _, ok := r.names[rType]; !ok {
		r.names[rType] = name
	}
	return class, nil
}

// Resolve returns a model class for supplied name
func (r *Registry) Resolve(name string) (*Class, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	class, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: view model name '%v'", ErrNotFound, name)
	}
	return class, nil
}

// NameOf returns the registered name of supplied model value or type
func (r *Registry) NameOf(value interface{}) (string, error) {
	rType, ok := value.(reflect.Type)
	if !ok {
		rType = reflect.TypeOf(value)
	}
	if rType != nil && rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	r.mux.RLock()
	defer r.mux.RUnlock()
	name, ok := r.names[rType]
	if !ok {
		return "", fmt.Errorf("%w: type %v", ErrNotFound, rType)
	}
	return name, nil
}

// New creates a new model instance of the class registered under supplied name
func (r *Registry) New(name string) (modelgraph.Model, error) {
	class, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return class.New(), nil
}

// Names returns sorted registered names
func (r *Registry) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, 0, len(r.classes))
	for name := range r.classes {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func modelStructType(value interface{}) (reflect.Type, error) {
	rType, ok := value.(reflect.Type)
	if !ok {
		rType = reflect.TypeOf(value)
	}
	if rType == nil {
		return nil, fmt.Errorf("model class was nil")
	}
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected model struct, got %v", rType)
	}
	if !reflect.PointerTo(rType).Implements(modelInterface) {
		return nil, fmt.Errorf("%v does not implement model", rType)
	}
	return rType, nil
}

// NewRegistry creates a registry
func NewRegistry() *Registry {
	return &Registry{classes: map[string]*Class{}, names: map[reflect.Type]string{}}
}
