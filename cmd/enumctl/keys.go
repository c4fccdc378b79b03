package main

import (
	"strconv"

	"github.com/arthur-debert/enumerated/enum"
)

// resolveArg turns a command-line argument into something the enum lookups
// accept. A value name wins; otherwise the text is parsed as a number for
// enums with number keys and kept as a string for the others.
func resolveArg(e *enum.Enum, raw string) any {
	if v, ok := e.ByName(raw); ok {
		return v
	}
	if keys := e.Keys(); len(keys) > 0 && keys[0].Kind() == enum.NumberKey {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return n
		}
	}
	return raw
}
