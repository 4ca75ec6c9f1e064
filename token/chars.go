package token

import "unicode"

// Escape makes the following character literal inside quoted text.
const Escape = '\\'

// Closer returns the character closing a group opened by r.
func Closer(r rune) (rune, bool) {
	switch r {
	case '(':
		return ')', true
	case '{':
		return '}', true
	case '[':
		return ']', true
	}
	return 0, false
}

func IsQuote(r rune) bool {
	return r == '"' || r == '\''
}

// IsSeparator reports whether r ends a bare token.  With spaceOnly,
// only ' ' and ',' do; otherwise any Unicode white space does too.
func IsSeparator(r rune, spaceOnly bool) bool {
	if r == ',' || r == ' ' {
		return true
	}
	if spaceOnly {
		return false
	}
	return unicode.IsSpace(r)
}
