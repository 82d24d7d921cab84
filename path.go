package router

// isValidPath reports whether path is a slash-separated sequence of
// word-character segments with an optional trailing slash. A leading slash,
// an empty segment or any byte outside [0-9A-Za-z_/] makes the path
// invalid, as does the empty string.
func isValidPath(path string) bool {
	if len(path) == 0 {
		return false
	}

	openSegment := true // the next byte must start a segment

	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '/':
			if openSegment {
				return false
			}
			openSegment = true
		case isWordByte(c):
			openSegment = false
		default:
			return false
		}
	}

	return true
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

// normalizePath ensures path carries a trailing slash. It assumes path
// already passed isValidPath, so it never needs to collapse separators.
func normalizePath(path string) string {
	if len(path) > 0 && path[len(path)-1] == '/' {
		return path
	}

	return path + "/"
}
