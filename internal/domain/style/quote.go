package style

// InString reports whether position index of line is likely to be inside a
// string literal, following the quoting rules common to most languages:
// `'`, `"` and "`" open a string that the same unescaped character closes,
// and a backslash inside a string escapes the next character.
//
// Index 0 (and anything before it) is considered to be within a string.
func InString(line string, index int) bool {
	if index <= 0 {
		return true
	}
	if index > len(line) {
		index = len(line)
	}

	var quote byte
	escaped := false
	for i := 0; i < index; i++ {
		c := line[i]
		if isQuote(c) {
			if quote != 0 {
				if c == quote && !escaped {
					quote = 0
				}
			} else {
				quote = c
			}
		}
		escaped = quote != 0 && c == '\\' && !escaped
	}

	return quote != 0
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"' || c == '`'
}
