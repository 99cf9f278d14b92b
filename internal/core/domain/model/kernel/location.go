package kernel

import (
	"fmt"

	"taproom/internal/pkg/errs"
)

// Location is one of the stores a cart can be priced at and an order routed to.
//
// The set is closed. LocationUnknown (the zero value) means the customer has not
// chosen a store yet; pricing treats it as "no overrides" and the cart guard never
// reports a conflict against it.
//
// Example:
//
//	loc, err := kernel.ParseLocation("foz-do-iguacu")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Foz do Iguaçu
type Location int

const (
	// LocationUnknown marks a session without a selected store.
	LocationUnknown Location = iota

	// MarechalCandidoRondon is the original store; its prices are the catalog base prices.
	MarechalCandidoRondon

	// FozDoIguacu carries its own price overrides.
	FozDoIguacu
)

func getLocationNames() map[Location]string {
	return map[Location]string{
		LocationUnknown:       "Unknown",
		MarechalCandidoRondon: "Marechal Cândido Rondon",
		FozDoIguacu:           "Foz do Iguaçu",
	}
}

func getLocationCodes() map[Location]string {
	//nolint:exhaustive // LocationUnknown has no wire code
	return map[Location]string{
		MarechalCandidoRondon: "marechal-candido-rondon",
		FozDoIguacu:           "foz-do-iguacu",
	}
}

// Locations lists the known stores in display order.
func Locations() []Location {
	return []Location{MarechalCandidoRondon, FozDoIguacu}
}

// ParseLocation maps a wire code back to a Location.
// An empty code yields LocationUnknown without error.
func ParseLocation(code string) (Location, error) {
	if code == "" {
		return LocationUnknown, nil
	}
	for loc, c := range getLocationCodes() {
		if c == code {
			return loc, nil
		}
	}
	return LocationUnknown, errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%q is not a known location", code))
}

// IsKnown reports whether l is one of the real stores.
func (l Location) IsKnown() bool {
	_, ok := getLocationCodes()[l]
	return ok
}

// Validate accepts LocationUnknown and every known store.
func (l Location) Validate() error {
	if l == LocationUnknown || l.IsKnown() {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("location", fmt.Errorf("%d is not a valid location", l))
}

// Code returns the wire code, empty for LocationUnknown.
func (l Location) Code() string {
	return getLocationCodes()[l]
}

func (l Location) String() string {
	if name, ok := getLocationNames()[l]; ok {
		return name
	}
	return "Unknown"
}
