package catalog

import (
	"fmt"

	"taproom/internal/pkg/errs"
)

// Style is the beer style tag of a product. Wine-based products carry a beer
// style tag too; see Product.IsWine.
type Style int

const (
	StyleUnknown Style = iota
	Pilsen
	Lager
	IPA
	Weiss
	Stout
	Amber
	Dunkel
	APA
	RedAle
	Vienna
	Sour
)

func getStyleNames() map[Style]string {
	return map[Style]string{
		StyleUnknown: "Unknown",
		Pilsen:       "Pilsen",
		Lager:        "Puro Malte",
		IPA:          "IPA",
		Weiss:        "Weiss",
		Stout:        "Stout",
		Amber:        "Amber Lager",
		Dunkel:       "Munich Dunkel",
		APA:          "APA",
		RedAle:       "Red Ale",
		Vienna:       "Vienna Lager",
		Sour:         "Sour",
	}
}

// IsBase reports whether s is one of the two generic entry styles.
// Base-style products never fill the mystery recommendation slot.
func (s Style) IsBase() bool {
	return s == Pilsen || s == Lager
}

func (s Style) Validate() error {
	if s == StyleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("style", fmt.Errorf("style is unknown"))
	}
	if _, ok := getStyleNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("style", fmt.Errorf("%d is not a valid style", s))
	}
	return nil
}

func (s Style) String() string {
	if name, ok := getStyleNames()[s]; ok {
		return name
	}
	return "Unknown"
}
