// Package ir defines the directive representation produced by the parser:
// directive and clause tags, typed clause payloads, variables with array
// sections, and opaque expressions.
//
// Every parse builds a fresh tree of plain values. Nothing is shared between
// trees and nothing is mutated after assembly, so IR values can cross
// goroutines without coordination.
package ir
