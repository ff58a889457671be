// Package modelgraph discovers the models reachable from a set of values.
//
// A model is any value implementing Model, a stable identity shared by
// every container and attribute that references it. Reference bearing
// attributes are either declared explicitly (HasRefs) or resolved once per
// struct type by reflection (TypeOf), following `ref` struct tags.
//
// Collect and CollectFiltered compute the duplicate free, breadth first
// closure of models reachable from their arguments. Visit and VisitImmediate
// are the lower level primitives they are built on.
package modelgraph
