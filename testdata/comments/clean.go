package sample

// Clean has nothing to report.
//
// It has two sections:
//
//     x := Clean{}
//
// NOTE Tags are fine at the start of a section.
type Clean struct{}

// TODO Add fields.
var url = "http://example.com"
