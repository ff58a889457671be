package registry

import (
	"path"
	"reflect"

	"github.com/viant/modelgraph"
)

type (
	//Class represents a registered model class
	Class struct {
		Name      string
		Qualified bool
		rType     reflect.Type
		modelType *modelgraph.Type
	}

	//Qualified marks a model class whose registered name is prefixed with its package name, embed it in model structs
	Qualified struct{}

	//ViewModeler overrides the model class name
	ViewModeler interface {
		ViewModel() string
	}

	qualifier interface {
		qualified()
	}
)

func (Qualified) qualified() {}

var (
	qualifierType   = reflect.TypeOf((*qualifier)(nil)).Elem()
	viewModelerType = reflect.TypeOf((*ViewModeler)(nil)).Elem()
	baseType        = reflect.TypeOf(modelgraph.Base{})
)

// Type returns model class struct type
func (c *Class) Type() reflect.Type {
	return c.rType
}

// ModelType returns model class attribute metadata
func (c *Class) ModelType() *modelgraph.Type {
	return c.modelType
}

// New creates a new model instance, an embedded modelgraph.Base gets a new identifier
func (c *Class) New() modelgraph.Model {
	ret := reflect.New(c.rType)
	if field, ok := c.rType.FieldByName("Base"); ok && len(field.Index) == 1 && field.Type == baseType {
		ret.Elem().Field(field.Index[0]).Set(reflect.ValueOf(modelgraph.NewBase()))
	}
	return ret.Interface().(modelgraph.Model)
}

// TypeName returns model class name for supplied struct or pointer to struct type
func TypeName(rType reflect.Type) string {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	name := rType.Name()
	ptrType := reflect.PointerTo(rType)
	if ptrType.Implements(viewModelerType) {
		if viewModel := reflect.New(rType).Interface().(ViewModeler).ViewModel(); viewModel != "" {
			name = viewModel
		}
	}
	if ptrType.Implements(qualifierType) {
		name = path.Base(rType.PkgPath()) + "." + name
	}
	return name
}
