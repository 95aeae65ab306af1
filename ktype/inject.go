package ktype

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholder = regexp.MustCompile(`\$([1-9][0-9]|[0-9])`)

// Inject replaces the placeholders $0 to $99 in template with the matching
// args. Strings are wrapped in double quotes, other values are printed
// with %v. Placeholders without an argument are kept as written.
func Inject(template string, args ...any) string {
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		i, _ := strconv.Atoi(m[1:])
		if i >= len(args) {
			return m
		}
		switch v := args[i].(type) {
		case string:
			return `"` + v + `"`
		default:
			return fmt.Sprintf("%v", v)
		}
	})
}
