package encoding

import (
	"time"

	"github.com/viant/modelgraph"
	"github.com/viant/modelgraph/registry"
)

// Option represents marshaller option
type Option func(m *Marshaller)

// WithRegistry sets registry used to resolve model type names
func WithRegistry(aRegistry *registry.Registry) Option {
	return func(m *Marshaller) {
		m.registry = aRegistry
	}
}

// WithDiscard sets predicate excluding models and their otherwise unreachable references
func WithDiscard(discard func(modelgraph.Model) bool) Option {
	return func(m *Marshaller) {
		m.discard = discard
	}
}

// WithTimeLayout sets default time layout
func WithTimeLayout(layout string) Option {
	return func(m *Marshaller) {
		m.timeLayout = layout
	}
}

// DefaultTimeLayout represents default time layout
const DefaultTimeLayout = time.RFC3339Nano
