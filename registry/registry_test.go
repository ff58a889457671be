package registry

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/modelgraph"
)

type (
	Range1d struct {
		modelgraph.Base
		Start float64
		End   float64
	}

	Plot struct {
		modelgraph.Base
		Qualified
		XRange modelgraph.Model `ref:"name=x_range"`
	}

	Custom struct {
		modelgraph.Base
	}

	Other struct {
		modelgraph.Base
	}

	notModel struct {
		Name string
	}

	badTag struct {
		modelgraph.Base
		Child modelgraph.Model `ref:"unknown"`
	}
)

func (c *Custom) ViewModel() string { return "CustomModel" }

func TestTypeName(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expect      string
	}{
		{description: "plain", value: &Range1d{}, expect: "Range1d"},
		{description: "struct value", value: Range1d{}, expect: "Range1d"},
		{description: "qualified", value: &Plot{}, expect: "registry.Plot"},
		{description: "view model override", value: &Custom{}, expect: "CustomModel"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, TypeName(reflect.TypeOf(testCase.value)), testCase.description)
	}
}

func TestRegistry_Register(t *testing.T) {
	var testCases = []struct {
		description string
		register    func(r *Registry) (*Class, error)
		expectName  string
		expectErr   error
		expectFail  bool
	}{
		{
			description: "by type name",
			register:    func(r *Registry) (*Class, error) { return r.Register(&Range1d{}) },
			expectName:  "Range1d",
		},
		{
			description: "by reflect type",
			register:    func(r *Registry) (*Class, error) { return r.Register(reflect.TypeOf(Custom{})) },
			expectName:  "CustomModel",
		},
		{
			description: "idempotent",
			register: func(r *Registry) (*Class, error) {
				if _, err := r.Register(&Range1d{}); err != nil {
					return nil, err
				}
				return r.Register(&Range1d{})
			},
			expectName: "Range1d",
		},
		{
			description: "conflict",
			register: func(r *Registry) (*Class, error) {
				if _, err := r.RegisterAs("Shared", &Range1d{}); err != nil {
					return nil, err
				}
				return r.RegisterAs("Shared", &Other{})
			},
			expectErr: ErrConflict,
		},
		{
			description: "not a model",
			register:    func(r *Registry) (*Class, error) { return r.Register(&notModel{}) },
			expectFail:  true,
		},
		{
			description: "invalid tag",
			register:    func(r *Registry) (*Class, error) { return r.Register(&badTag{}) },
			expectFail:  true,
		},
		{
			description: "empty name",
			register:    func(r *Registry) (*Class, error) { return r.RegisterAs("", &Other{}) },
			expectFail:  true,
		},
	}

	for _, testCase := range testCases {
		class, err := testCase.register(NewRegistry())
		if testCase.expectErr != nil {
			assert.True(t, errors.Is(err, testCase.expectErr), testCase.description)
			continue
		}
		if testCase.expectFail {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectName, class.Name, testCase.description)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry()
	plotClass, err := registry.Register(&Plot{})
	require.NoError(t, err)
	assert.True(t, plotClass.Qualified)
	assert.EqualValues(t, []string{"x_range"}, plotClass.ModelType().RefNames())

	class, err := registry.Resolve("registry.Plot")
	require.NoError(t, err)
	assert.Same(t, plotClass, class)
	assert.Equal(t, reflect.TypeOf(Plot{}), class.Type())

	_, err = registry.Resolve("Plot")
	assert.True(t, errors.Is(err, ErrNotFound))

	name, err := registry.NameOf(&Plot{})
	require.NoError(t, err)
	assert.Equal(t, "registry.Plot", name)
	_, err = registry.NameOf(&Range1d{})
	assert.True(t, errors.Is(err, ErrNotFound))

	model, err := registry.New("registry.Plot")
	require.NoError(t, err)
	plot, ok := model.(*Plot)
	require.True(t, ok)
	assert.Len(t, string(plot.ID()), 36)
	another, err := registry.New("registry.Plot")
	require.NoError(t, err)
	assert.NotEqual(t, plot.ID(), another.ID())

	_, err = registry.New("Missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualValues(t, []string{"registry.Plot"}, registry.Names())
}

func TestDefault(t *testing.T) {
	MustRegister(&Range1d{})
	class, err := Resolve("Range1d")
	require.NoError(t, err)
	assert.Equal(t, "Range1d", class.Name)
	name, err := NameOf(Range1d{})
	require.NoError(t, err)
	assert.Equal(t, "Range1d", name)
	_, err = RegisterAs("Range", &Range1d{})
	require.NoError(t, err)
	model, err := New("Range")
	require.NoError(t, err)
	assert.IsType(t, &Range1d{}, model)
	assert.Panics(t, func() { MustRegister(&notModel{}) })
}
