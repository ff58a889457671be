// Package document tracks the models attached to a document.
//
// A Document owns a set of root models; every model reachable from the roots
// is attached to it. Models opt into attachment bookkeeping by embedding Ref.
package document

import "github.com/viant/modelgraph"

type (
	//Attachable represents a model that keeps a reference to its document
	Attachable interface {
		modelgraph.Model
		Document() *Document
		AttachedDocument() *Document
		SetDocument(doc *Document)
	}

	//Ref implements document reference bookkeeping, embed it in model structs
	Ref struct {
		document     *Document
		tempDocument *Document
	}
)

// Document returns the temporary document if set, otherwise the attached document, can be nil
func (r *Ref) Document() *Document {
	if r.tempDocument != nil {
		return r.tempDocument
	}
	return r.document
}

// AttachedDocument returns the attached document ignoring the temporary one, can be nil
func (r *Ref) AttachedDocument() *Document {
	return r.document
}

// SetDocument sets attached document
func (r *Ref) SetDocument(doc *Document) {
	r.document = doc
}

// SetTempDocument sets a document overriding the attached one until cleared
func (r *Ref) SetTempDocument(doc *Document) {
	r.tempDocument = doc
}

// ClearTempDocument clears temporary document
func (r *Ref) ClearTempDocument() {
	r.tempDocument = nil
}
