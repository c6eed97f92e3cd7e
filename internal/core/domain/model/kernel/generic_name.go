package kernel

import (
	"strings"
	"unicode/utf8"
)

// GenericNameMaxLength is the longest status name the back-office accepts.
const GenericNameMaxLength = 64

// IsGenericName reports whether s is a storable status name: at most
// GenericNameMaxLength runes and none of the characters <>={}.
func IsGenericName(s string) bool {
	return utf8.RuneCountInString(s) <= GenericNameMaxLength && !strings.ContainsAny(s, "<>={}")
}
