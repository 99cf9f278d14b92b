package catalog

import (
	"fmt"

	"taproom/internal/pkg/errs"
)

// Category groups products by container. Kegs need event logistics; growlers do not.
type Category int

const (
	CategoryUnknown Category = iota
	Growler
	Keg30
	Keg50
)

func getCategoryCodes() map[Category]string {
	//nolint:exhaustive // CategoryUnknown has no wire code
	return map[Category]string{
		Growler: "growler",
		Keg30:   "keg-30l",
		Keg50:   "keg-50l",
	}
}

func getCategoryNames() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		Growler:         "Growlers",
		Keg30:           "Barris 30L",
		Keg50:           "Barris 50L",
	}
}

// IsKeg reports whether the category is one of the keg sizes.
func (c Category) IsKeg() bool {
	return c == Keg30 || c == Keg50
}

func (c Category) Validate() error {
	if _, ok := getCategoryCodes()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) Code() string {
	return getCategoryCodes()[c]
}

func (c Category) String() string {
	if name, ok := getCategoryNames()[c]; ok {
		return name
	}
	return "Unknown"
}

// ParseCategory maps a wire code back to a Category.
func ParseCategory(code string) (Category, error) {
	for c, s := range getCategoryCodes() {
		if s == code {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a known category", code))
}
