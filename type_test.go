package modelgraph

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reflect"
	"testing"
	"time"
)

type (
	lineStyle struct {
		LineColor string
		Glyph     Model
	}

	figure struct {
		Base
		lineStyle
		UserName  string
		XRange    Model `ref:"name=x_range"`
		Renderers []Model
		Tags      []string
		Hidden    Model `ref:"-"`
		Options   map[string]string
		Sources   map[string]*node
		Extra     []int `ref:"include"`
		CreatedAt time.Time
		private   Model
	}

	overridden struct {
		lineStyle
		Glyph string
	}

	recursive struct {
		Name string
		Next *recursive
	}

	badTag struct {
		Child Model `ref:"bogus"`
	}
)

func TestTypeOf(t *testing.T) {
	var testCases = []struct {
		description string
		value       interface{}
		expectAttrs []string
		expectRefs  []string
		expectModel bool
		expectErr   bool
	}{
		{
			description: "model struct",
			value:       &figure{},
			expectAttrs: []string{"line_color", "glyph", "user_name", "x_range", "renderers", "tags", "hidden", "options", "sources", "extra", "created_at"},
			expectRefs:  []string{"glyph", "x_range", "renderers", "sources", "extra"},
			expectModel: true,
		},
		{
			description: "shallow field wins",
			value:       overridden{},
			expectAttrs: []string{"line_color", "glyph"},
			expectRefs:  nil,
		},
		{
			description: "recursive type",
			value:       &recursive{},
			expectAttrs: []string{"name", "next"},
			expectRefs:  []string{"next"},
		},
		{
			description: "invalid tag",
			value:       &badTag{},
			expectErr:   true,
		},
		{
			description: "not a struct",
			value:       []int{},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		actual, err := TypeOf(reflect.TypeOf(testCase.value))
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var names []string
		for _, attr := range actual.Attributes() {
			names = append(names, attr.Name)
		}
		assert.EqualValues(t, testCase.expectAttrs, names, testCase.description)
		assert.EqualValues(t, testCase.expectRefs, actual.RefNames(), testCase.description)
		assert.Equal(t, testCase.expectModel, actual.IsModel(), testCase.description)
	}
}

func TestTypeOf_Cached(t *testing.T) {
	first, err := TypeOf(reflect.TypeOf(&figure{}))
	require.NoError(t, err)
	second, err := TypeOf(reflect.TypeOf(figure{}))
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestObject_Attribute(t *testing.T) {
	glyph, xRange := newNode("G"), newNode("X")
	aFigure := &figure{Base: BaseWithID("F"), UserName: "bob", XRange: xRange}
	aFigure.Glyph = glyph
	object, err := ObjectOf(aFigure)
	require.NoError(t, err)

	value, err := object.Attribute("user_name")
	require.NoError(t, err)
	assert.Equal(t, "bob", value)

	value, err = object.Attribute("glyph")
	require.NoError(t, err)
	assert.Same(t, glyph, value)

	assert.Same(t, xRange, object.RefValue("x_range"))
	assert.Nil(t, object.RefValue("user_name"))
	_, err = object.Attribute("missing")
	assert.NotNil(t, err)

	refs, ok := RefsOf(aFigure)
	require.True(t, ok)
	assert.EqualValues(t, []string{"glyph", "x_range", "renderers", "sources", "extra"}, refs.RefNames())

	_, err = ObjectOf((*figure)(nil))
	assert.NotNil(t, err)
}

func TestBase_ID(t *testing.T) {
	var base, other Base
	id := base.ID()
	assert.NotEmpty(t, id)
	assert.Equal(t, id, base.ID())
	assert.Empty(t, base.id)
	assert.NotEqual(t, id, other.ID())

	b1, b2 := NewBase(), NewBase()
	assert.NotEqual(t, b1.ID(), b2.ID())
	named := BaseWithID("n1")
	assert.Equal(t, ID("n1"), named.ID())
}
