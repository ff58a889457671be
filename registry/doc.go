// Package registry maps model names to model classes and back.
//
// Classes are registered explicitly, typically from an init function of the
// package declaring the model types. The package level functions operate on
// a process wide Default registry.
package registry
