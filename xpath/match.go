package xpath

// findClosing locates the token that closes the opener at tokens[from],
// scanning no further than to. It returns -1 when no closer exists in range,
// or when tokens[from] is not an opener.
//
// Quotes close on the first matching quote token. Parens and square brackets
// track nesting of both kinds, and ignore everything inside quotes. A "/"
// opener closes on the next "/" found at bracket depth zero outside quotes;
// this is how a path splits into successive steps while predicates like
// a[b/c] keep their inner slashes.
func findClosing(tokens []string, from, to int) int {
	if from < 0 || from >= len(tokens) || to >= len(tokens) {
		return -1
	}
	opener := tokens[from]

	if opener == `"` || opener == `'` {
		for i := from + 1; i <= to; i++ {
			if tokens[i] == opener {
				return i
			}
		}
		return -1
	}
	if opener != "(" && opener != "[" && opener != "/" {
		return -1
	}

	quoteClosed, aposClosed := true, true
	parens, brackets := 0, 0
	slashes := 1
	switch opener {
	case "(":
		parens = 1
	case "[":
		brackets = 1
	}

	for i := from + 1; i <= to; i++ {
		switch tokens[i] {
		case `"`:
			if aposClosed {
				quoteClosed = !quoteClosed
			}
		case `'`:
			if quoteClosed {
				aposClosed = !aposClosed
			}
		case "(":
			if quoteClosed && aposClosed {
				parens++
			}
		case ")":
			if quoteClosed && aposClosed {
				parens--
				if opener == "(" && parens == 0 && brackets == 0 {
					return i
				}
			}
		case "[":
			if quoteClosed && aposClosed {
				brackets++
			}
		case "]":
			if quoteClosed && aposClosed {
				brackets--
				if opener == "[" && brackets == 0 && parens == 0 {
					return i
				}
			}
		case "/":
			if quoteClosed && aposClosed && parens == 0 && brackets == 0 {
				slashes--
				if opener == "/" && slashes == 0 {
					return i
				}
			}
		}
	}
	return -1
}
