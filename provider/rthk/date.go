package rthk

import (
	"strings"

	"github.com/samber/mo"
)

// ParseDate turns the day/month/year date of an episode page into year, month
// and day concatenated. Components are reordered as they are: no padding
// and no calendar check, so "6/08/2020" becomes "2020086".
func ParseDate(raw mo.Option[string]) (mo.Option[string], error) {
	value, ok := raw.Get()
	if !ok || value == "" {
		return mo.None[string](), nil
	}

	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return mo.None[string](), &DateFormatError{Raw: value}
	}

	day, month, year := parts[0], parts[1], parts[2]
	return mo.Some(year + month + day), nil
}
