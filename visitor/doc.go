// Package visitor offers deterministic visitors over container values.
// Sequences are visited in index order, mappings in sorted key order, so
// that walking the same unmutated value twice always yields the same
// element order.
package visitor
