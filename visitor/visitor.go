package visitor

// Visitor yields (key, element) pairs to the supplied callback.
// If the callback returns false, the Visit stops.
// Visitor has the range-over-func shape, so it can be used in a for range loop.
type Visitor[K any, E any] func(yield func(key K, element E) bool)

type (
	//Sequence represents an ordered container that is not a Go slice or array
	Sequence interface {
		Len() int
		At(index int) interface{}
	}

	//Mapping represents a key unique container that is not a Go map, Keys defines visiting order
	Mapping interface {
		Keys() []interface{}
		Get(key interface{}) interface{}
	}
)
