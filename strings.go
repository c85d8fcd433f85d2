package functions

import (
	"strconv"
	"strings"
)

// TrimString returns a transform stripping leading and trailing white space,
// including tabs and newlines.
func TrimString() Func[string, string] {
	return strings.TrimSpace
}

// ParseInt returns a fallible transform parsing a base-10 integer literal.
// Anything strconv.Atoi rejects comes back as its error; compose with Must
// when the input is known to be well formed.
func ParseInt() ErrFunc[string, int] {
	return strconv.Atoi
}
