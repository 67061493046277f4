package sample

// Good is a well formed comment.

/* Block comments are rejected. */

//Missing space after the marker.

// lowercase start is rejected.

// A sentence may continue
// onto a lowercase line.

// First section is fine.
//
// second section starts lowercase.

// No final period

// Section without punctuation
//
// Final section.

// Ends with a colon:

//     indented code sample

//
// Leading blank line.

// Trailing blank line.
//

//TODO Missing space before tag.

// TODO lowercase after tag.

// NOTE: Colon after tag.

var s = "// inside a string"
var x = 1 // trailing comment.
// Final block at EOF without period
