package registry

import "github.com/viant/modelgraph"

// Default represents process wide registry
var Default = NewRegistry()

// Register registers model class with the default registry
func Register(value interface{}) (*Class, error) {
	return Default.Register(value)
}

// RegisterAs registers model class under supplied name with the default registry
func RegisterAs(name string, value interface{}) (*Class, error) {
	return Default.RegisterAs(name, value)
}

// MustRegister registers model classes with the default registry or panics
func MustRegister(values ...interface{}) {
	for _, value := range values {
		if _, err := Default.Register(value); err != nil {
			panic(err)
		}
	}
}

// Resolve returns a model class from the default registry
func Resolve(name string) (*Class, error) {
	return Default.Resolve(name)
}

// NameOf returns registered model name from the default registry
func NameOf(value interface{}) (string, error) {
	return Default.NameOf(value)
}

// New creates a new model instance from the default registry
func New(name string) (modelgraph.Model, error) {
	return Default.New(name)
}
