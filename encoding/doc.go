// Package encoding serializes a model graph as a flat list of references.
//
// Every model reachable from the marshalled values is emitted once with its
// registered type name, identifier and attributes; a model nested in an
// attribute value is replaced by an {"id": ...} reference.
package encoding
