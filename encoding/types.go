package encoding

import (
	"github.com/francoispqt/gojay"
	"github.com/viant/modelgraph"
)

type (
	document struct {
		references references
	}

	references []*reference

	reference struct {
		typeName   string
		id         modelgraph.ID
		attributes *object
	}

	refObject struct {
		id modelgraph.ID
	}

	object struct {
		keys   []string
		values []interface{}
	}

	array []interface{}
)

func (d *document) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("references", d.references)
}

func (d *document) IsNil() bool { return d == nil }

func (r references) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ref := range r {
		enc.Object(ref)
	}
}

func (r references) IsNil() bool { return false }

func (r *reference) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("type", r.typeName)
	enc.StringKey("id", string(r.id))
	enc.ObjectKey("attributes", r.attributes)
}

func (r *reference) IsNil() bool { return r == nil }

func (r *refObject) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("id", string(r.id))
}

func (r *refObject) IsNil() bool { return r == nil }

func (o *object) put(key string, value interface{}) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

func (o *object) MarshalJSONObject(enc *gojay.Encoder) {
	for i, key := range o.keys {
		addKey(enc, key, o.values[i])
	}
}

func (o *object) IsNil() bool { return false }

func (a array) MarshalJSONArray(enc *gojay.Encoder) {
	for _, value := range a {
		add(enc, value)
	}
}

func (a array) IsNil() bool { return false }

// addKey encodes an object member, value has to be normalised by Marshaller.value
func addKey(enc *gojay.Encoder, key string, value interface{}) {
	switch actual := value.(type) {
	case nil:
		enc.NullKey(key)
	case string:
		enc.StringKey(key, actual)
	case bool:
		enc.BoolKey(key, actual)
	case int64:
		enc.Int64Key(key, actual)
	case uint64:
		enc.Uint64Key(key, actual)
	case float64:
		enc.Float64Key(key, actual)
	case gojay.MarshalerJSONObject:
		enc.ObjectKey(key, actual)
	case gojay.MarshalerJSONArray:
		enc.ArrayKey(key, actual)
	}
}

// add encodes an array element, value has to be normalised by Marshaller.value
func add(enc *gojay.Encoder, value interface{}) {
	switch actual := value.(type) {
	case nil:
		enc.Null()
	case string:
		enc.String(actual)
	case bool:
		enc.Bool(actual)
	case int64:
		enc.Int64(actual)
	case uint64:
		enc.Uint64(actual)
	case float64:
		enc.Float64(actual)
	case gojay.MarshalerJSONObject:
		enc.Object(actual)
	case gojay.MarshalerJSONArray:
		enc.Array(actual)
	}
}
