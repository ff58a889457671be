package document

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/viant/modelgraph"
)

// ErrForeignDocument is returned when a reachable model is attached to another document
var ErrForeignDocument = errors.New("model is already in another document")

// Document represents a set of root models and all models reachable from them
type Document struct {
	id     string
	roots  []modelgraph.Model
	models []modelgraph.Model
	index  map[modelgraph.ID]modelgraph.Model
	logger *slog.Logger
}

// ID returns document identifier
func (d *Document) ID() string {
	return d.id
}

// Roots returns document roots
func (d *Document) Roots() []modelgraph.Model {
	return append([]modelgraph.Model{}, d.roots...)
}

// Models returns all attached models in discovery order
func (d *Document) Models() []modelgraph.Model {
	return append([]modelgraph.Model{}, d.models...)
}

// Len returns number of attached models
func (d *Document) Len() int {
	return len(d.models)
}

// Get returns attached model by identifier
func (d *Document) Get(id modelgraph.ID) (modelgraph.Model, bool) {
	model, ok := d.index[id]
	return model, ok
}

// AddRoot adds a root model and attaches every model reachable from it
func (d *Document) AddRoot(model modelgraph.Model) error {
	if model == nil {
		return fmt.Errorf("root model was nil")
	}
	if d.rootIndex(model.ID()) != -1 {
		return nil
	}
	d.roots = append(d.roots, model)
	if err := d.Recompute(); err != nil {
		d.roots = d.roots[:len(d.roots)-1]
		return err
	}
	return nil
}

// RemoveRoot removes a root model, models no longer reachable are detached
func (d *Document) RemoveRoot(model modelgraph.Model) error {
	if model == nil {
		return fmt.Errorf("root model was nil")
	}
	index := d.rootIndex(model.ID())
	if index == -1 {
		return fmt.Errorf("model %v is not a root of document %v", model.ID(), d.id)
	}
	d.roots = append(d.roots[:index:index], d.roots[index+1:]...)
	return d.Recompute()
}

// Clear removes all roots and detaches all models
func (d *Document) Clear() {
	d.roots = nil
	d.detach(d.models, nil)
	d.models = nil
	d.index = map[modelgraph.ID]modelgraph.Model{}
}

// Recompute re-collects models reachable from the roots, attaching new ones and detaching unreachable ones.
// It has to be called after a reference bearing attribute of an attached model changes.
func (d *Document) Recompute() error {
	models := modelgraph.Collect(d.roots)
	for _, model := range models {
		attachable, ok := model.(Attachable)
		if !ok {
			continue
		}
		if doc := attachable.AttachedDocument(); doc != nil && doc != d {
			return fmt.Errorf("%w: model %v is attached to %v", ErrForeignDocument, model.ID(), doc.ID())
		}
	}
	index := make(map[modelgraph.ID]modelgraph.Model, len(models))
	attached := 0
	for _, model := range models {
		index[model.ID()] = model
		if _, ok := d.index[model.ID()]; !ok {
			attached++
		}
		if attachable, ok := model.(Attachable); ok {
			attachable.SetDocument(d)
		}
	}
	detached := d.detach(d.models, index)
	d.models = models
	d.index = index
	d.logger.Debug("recomputed document models", "document", d.id, "roots", len(d.roots), "models", len(models), "attached", attached, "detached", detached)
	return nil
}

func (d *Document) detach(models []modelgraph.Model, keep map[modelgraph.ID]modelgraph.Model) int {
	detached := 0
	for _, model := range models {
		if _, ok := keep[model.ID()]; ok {
			continue
		}
		detached++
		if attachable, ok := model.(Attachable); ok && attachable.AttachedDocument() == d {
			attachable.SetDocument(nil)
		}
	}
	return detached
}

// Neighbors returns distinct models directly referenced by supplied model
func (d *Document) Neighbors(model modelgraph.Model) []modelgraph.Model {
	var result []modelgraph.Model
	seen := map[modelgraph.ID]bool{}
	modelgraph.VisitImmediate(model, func(neighbor modelgraph.Model) {
		if seen[neighbor.ID()] {
			return
		}
		seen[neighbor.ID()] = true
		result = append(result, neighbor)
	})
	return result
}

func (d *Document) rootIndex(id modelgraph.ID) int {
	for i, root := range d.roots {
		if root.ID() == id {
			return i
		}
	}
	return -1
}

// New creates a document
func New(opts ...Option) *Document {
	ret := &Document{
		id:     uuid.NewString(),
		index:  map[modelgraph.ID]modelgraph.Model{},
		logger: slog.New(slog.DiscardHandler),
	}
	Options(opts).Apply(ret)
	return ret
}
