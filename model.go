package modelgraph

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/modelgraph/visitor"
)

// ID represents model identifier
type ID string

// NewID returns a new random model identifier
func NewID() ID {
	return ID(uuid.NewString())
}

// String returns identifier text
func (i ID) String() string {
	return string(i)
}

type (
	//Model represents a graph node with stable identity
	Model interface {
		ID() ID
	}

	//HasRefs represents a value declaring its reference bearing attributes
	HasRefs interface {
		RefNames() []string
		RefValue(name string) interface{}
	}

	//Sequence represents an ordered container
	Sequence = visitor.Sequence

	//Mapping represents a key unique container
	Mapping = visitor.Mapping

	//Base implements Model, embed it in model structs
	Base struct {
		id ID
	}
)

// NewBase creates a base with a new identifier
func NewBase() Base {
	return Base{id: NewID()}
}

// BaseWithID creates a base with supplied identifier
func BaseWithID(id ID) Base {
	return Base{id: id}
}

// ID returns model identifier. Base never changes its identifier once built:
// a zero Base is identified by its address, use NewBase or BaseWithID for a portable identifier.
func (b *Base) ID() ID {
	if b.id == "" {
		return ID(fmt.Sprintf("%p", b))
	}
	return b.id
}
