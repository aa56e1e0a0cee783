// Package fuzztests houses Go fuzz harnesses for the directive front
// end (sentinel detection, tokenizing, parsing). Their job is to guard
// against panics, hangs and invariant breaks on arbitrary input; they
// assert nothing about which inputs are valid directives.
package fuzztests
