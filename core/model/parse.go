package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims s and lower-cases it for case-insensitive matching. Simple
// lower-casing is used rather than full case folding, so look-alike letters
// such as the long s (ſ) do not match their ASCII counterparts.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// ParseRegion matches s against the known region keys ignoring case.
func ParseRegion(s string) (Region, error) {
	key := Normalize(s)
	for _, r := range Regions() {
		if r.Key() == key {
			return r, nil
		}
	}
	return RegionUnknown, &InvalidRegionError{Input: strings.TrimSpace(s)}
}

// ParseKind matches s against the known kind keys ignoring case.
func ParseKind(s string) (Kind, error) {
	key := Normalize(s)
	for _, k := range Kinds() {
		if k.Key() == key {
			return k, nil
		}
	}
	return KindUnknown, &InvalidKindError{Input: strings.TrimSpace(s)}
}
