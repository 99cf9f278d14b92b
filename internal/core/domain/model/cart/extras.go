package cart

import (
	"fmt"

	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/pkg/errs"
)

// MugsTier is the size of the branded mug kit rented with a keg.
type MugsTier int

const (
	MugsNone MugsTier = iota
	Mugs24
	Mugs36
	Mugs48
)

type mugsTierInfo struct {
	quantity int
	price    uint32
}

func getMugsTiers() map[MugsTier]mugsTierInfo {
	return map[MugsTier]mugsTierInfo{
		MugsNone: {quantity: 0, price: 0},
		Mugs24:   {quantity: 24, price: 30},
		Mugs36:   {quantity: 36, price: 40},
		Mugs48:   {quantity: 48, price: 50},
	}
}

// ParseMugsTier maps a mug count (0, 24, 36 or 48) to its tier.
func ParseMugsTier(quantity int) (MugsTier, error) {
	for tier, info := range getMugsTiers() {
		if info.quantity == quantity {
			return tier, nil
		}
	}
	return MugsNone, errs.NewValueIsInvalidErrorWithCause("mugs", fmt.Errorf("%d is not an offered mug kit", quantity))
}

func (m MugsTier) Validate() error {
	if _, ok := getMugsTiers()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mugs", fmt.Errorf("%d is not a valid mugs tier", m))
	}
	return nil
}

// Quantity is the number of mugs in the kit.
func (m MugsTier) Quantity() int {
	return getMugsTiers()[m].quantity
}

// Price is the rental price of the kit.
func (m MugsTier) Price() kernel.Money {
	return kernel.Reais(getMugsTiers()[m].price)
}

// TonelSurcharge is the rental price of a tonel (insulated keg barrel).
func TonelSurcharge() kernel.Money {
	return kernel.Reais(30)
}

// Extras are the keg accessories attached to one line item.
type Extras struct {
	RentTonel            bool
	Mugs                 MugsTier
	RequestMoreCupsQuote bool
}

// Surcharge is the per-unit price added by the extras:
// tonel surcharge when rented plus the mugs tier price.
func (e Extras) Surcharge() kernel.Money {
	total := e.Mugs.Price()
	if e.RentTonel {
		total = total.Add(TonelSurcharge())
	}
	return total
}

// ExtrasPatch carries extras supplied by one add or upsell action.
// Nil fields were not supplied and leave the current value alone.
type ExtrasPatch struct {
	RentTonel            *bool
	Mugs                 *MugsTier
	RequestMoreCupsQuote *bool
}

func (p ExtrasPatch) Validate() error {
	if p.Mugs != nil {
		return p.Mugs.Validate()
	}
	return nil
}

// IsEmpty reports whether the patch supplies no field at all.
func (p ExtrasPatch) IsEmpty() bool {
	return p.RentTonel == nil && p.Mugs == nil && p.RequestMoreCupsQuote == nil
}

// MergeExtras applies patch over current, field by field: a supplied field
// replaces the current value (last write wins), an omitted field keeps it.
func MergeExtras(current Extras, patch ExtrasPatch) Extras {
	merged := current
	if patch.RentTonel != nil {
		merged.RentTonel = *patch.RentTonel
	}
	if patch.Mugs != nil {
		merged.Mugs = *patch.Mugs
	}
	if patch.RequestMoreCupsQuote != nil {
		merged.RequestMoreCupsQuote = *patch.RequestMoreCupsQuote
	}
	return merged
}
