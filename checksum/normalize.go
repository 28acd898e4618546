package checksum

import "strings"

const (
	space          = " "
	tab            = "\t"
	newline        = "\n"
	carriageReturn = "\r"
)

var normalizer = strings.NewReplacer(tab, space, carriageReturn, "")

// Normalize replaces every tab in s with a single space and removes every
// carriage return. It is idempotent.
func Normalize(s string) string {
	return normalizer.Replace(s)
}
