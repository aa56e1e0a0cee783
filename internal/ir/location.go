package ir

import "strconv"

// SourceLocation is the 1-based line and column where a directive starts
// in its original file. It is captured when parsing begins and never
// adjusted afterwards.
type SourceLocation struct {
	Line   uint32
	Column uint32
}

// StartOfFile is the location of the first byte of a file.
func StartOfFile() SourceLocation {
	return SourceLocation{Line: 1, Column: 1}
}

// String formats the location as "line:column".
func (l SourceLocation) String() string {
	return strconv.FormatUint(uint64(l.Line), 10) + ":" + strconv.FormatUint(uint64(l.Column), 10)
}
