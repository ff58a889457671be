package modelgraph

type (
	node struct {
		Base
		Name     string
		Children []Model
		Props    map[string]interface{}
	}

	legend struct {
		Items []Model
		Title string
	}

	declared struct {
		Base
		refs map[string]interface{}
		keys []string
	}

	pairs struct {
		keys   []interface{}
		values map[interface{}]interface{}
	}

	items []interface{}

	marker string

	holder struct {
		Base
		Markers []marker
	}
)

func (m marker) ID() ID { return ID(m) }

func newNode(name string, children ...Model) *node {
	return &node{Base: BaseWithID(ID(name)), Name: name, Children: children}
}

func (d *declared) RefNames() []string { return d.keys }

func (d *declared) RefValue(name string) interface{} { return d.refs[name] }

func (p *pairs) Keys() []interface{} { return p.keys }

func (p *pairs) Get(key interface{}) interface{} { return p.values[key] }

func (s items) Len() int { return len(s) }

func (s items) At(index int) interface{} { return s[index] }

func ids(models []Model) []ID {
	var result = []ID{}
	for _, model := range models {
		result = append(result, model.ID())
	}
	return result
}
