// Package command defines the closed set of per-field transformations the
// tool can perform, and the parser that lifts textual command arguments of
// the form "N:SPEC" into an ordered, immutable execution plan.
//
// A Command is a value type dispatched on its Kind tag; the set of kinds is
// closed, and adding a transformation means extending the type. A Plan is
// applied by the processor package, one field at a time, in plan order.
package command
