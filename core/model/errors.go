package model

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidRegion matches any *InvalidRegionError.
	ErrInvalidRegion = errors.New("invalid region")
	// ErrInvalidPizzaKind matches any *InvalidKindError.
	ErrInvalidPizzaKind = errors.New("invalid pizza kind")
)

// InvalidRegionError is returned when the input names no known region.
// Input keeps the text as typed; the message lists the allowed regions only.
type InvalidRegionError struct {
	Input string
}

func (e *InvalidRegionError) Error() string {
	names := make([]string, 0, len(Regions()))
	for _, r := range Regions() {
		names = append(names, r.String())
	}
	return "Invalid region. Choose from " + joinChoices(names, "or") + "."
}

func (e *InvalidRegionError) Is(target error) bool { return target == ErrInvalidRegion }

// InvalidKindError is returned when the input names no known pizza kind.
type InvalidKindError struct {
	Input string
}

func (e *InvalidKindError) Error() string {
	names := make([]string, 0, len(Kinds()))
	for _, k := range Kinds() {
		names = append(names, "'"+k.Key()+"'")
	}
	return "Invalid pizza type. Choose " + joinChoices(names, "or") + "."
}

func (e *InvalidKindError) Is(target error) bool { return target == ErrInvalidPizzaKind }

// joinChoices renders "a or b" and "a, b, or c".
func joinChoices(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", " + conj + " " + items[len(items)-1]
}
