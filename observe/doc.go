// Package observe provides observability primitives for date filtering.
//
// It is a pure instrumentation library: no parsing, no formatting, no I/O
// beyond exporter setup and log output. The filter package wraps every
// invocation with a Middleware built from an Observer.
package observe
