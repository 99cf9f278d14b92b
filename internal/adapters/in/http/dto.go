package http

import (
	"time"

	"taproom/internal/core/application/usecases/queries"
	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/upsell"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LocationRequest struct {
	Location string `json:"location"`
}

type SessionCreated struct {
	ID string `json:"id"`
}

type Product struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Category                  string `json:"category"`
	Style                     string `json:"style"`
	VolumeLiters              int    `json:"volumeLiters"`
	BasePrice                 string `json:"basePrice"`
	Price                     string `json:"price"`
	Popular                   bool   `json:"popular"`
	Champion                  bool   `json:"champion"`
	RequiresAvailabilityCheck bool   `json:"requiresAvailabilityCheck"`
	Wine                      bool   `json:"wine"`
	Mystery                   bool   `json:"mystery,omitempty"`
}

type Catalog struct {
	Location string    `json:"location"`
	Products []Product `json:"products"`
}

type Calculator struct {
	Liters   int       `json:"liters"`
	Category string    `json:"category"`
	Kegs     []Product `json:"kegs"`
}

type PendingOrder struct {
	ID           string    `json:"id"`
	Location     string    `json:"location"`
	CustomerName string    `json:"customerName"`
	Total        string    `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	RentTonel *bool  `json:"rentTonel,omitempty"`
	Mugs      *int   `json:"mugs,omitempty"`
	CupsQuote *bool  `json:"cupsQuote,omitempty"`
}

type AddConflict struct {
	ProductID         string `json:"productId"`
	CartLocation      string `json:"cartLocation"`
	RequestedLocation string `json:"requestedLocation"`
}

type AddToCartResult struct {
	Accepted bool         `json:"accepted"`
	Conflict *AddConflict `json:"conflict,omitempty"`
}

type QuantityRequest struct {
	Delta int `json:"delta"`
}

type ChoiceRequest struct {
	Choice string `json:"choice"`
}

type PhaseResult struct {
	Phase string `json:"phase"`
}

type UpsellRequest struct {
	Decline   bool     `json:"decline"`
	RentTonel bool     `json:"rentTonel"`
	Mugs      int      `json:"mugs"`
	CupsQuote bool     `json:"cupsQuote"`
	Products  []string `json:"products"`
}

type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

type Event struct {
	ReceiverName string `json:"receiverName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Voltage      string `json:"voltage"`
}

type CheckoutForm struct {
	Name                   string  `json:"name"`
	Phone                  string  `json:"phone"`
	CustomerType           string  `json:"customerType"`
	GovernmentID           string  `json:"governmentId"`
	BirthDate              string  `json:"birthDate"`
	Residential            Address `json:"residential"`
	DeliveryMethod         string  `json:"deliveryMethod"`
	ShipToDifferentAddress bool    `json:"shipToDifferentAddress"`
	DeliveryAddress        Address `json:"deliveryAddress"`
	EventDetailsDeferred   bool    `json:"eventDetailsDeferred"`
	Event                  Event   `json:"event"`
	PaymentMethod          string  `json:"paymentMethod"`
}

type MissingFields struct {
	MissingFields []string `json:"missingFields"`
}

type SubmittedOrder struct {
	OrderID       string `json:"orderId"`
	Total         string `json:"total"`
	Channel       string `json:"channel,omitempty"`
	Link          string `json:"link,omitempty"`
	Message       string `json:"message,omitempty"`
	HandoffFailed bool   `json:"handoffFailed"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
	RentTonel bool   `json:"rentTonel"`
	Mugs      int    `json:"mugs"`
	CupsQuote bool   `json:"cupsQuote"`
	Upsell    bool   `json:"upsell"`
}

type CheckoutConflict struct {
	CartLocation    string `json:"cartLocation"`
	CurrentLocation string `json:"currentLocation"`
}

// Offer is either a keg offer (the Offer* flags) or a growler offer (Candidates).
type Offer struct {
	Kind           string    `json:"kind"`
	OfferTonel     bool      `json:"offerTonel,omitempty"`
	OfferMugs      bool      `json:"offerMugs,omitempty"`
	OfferCupsQuote bool      `json:"offerCupsQuote,omitempty"`
	Candidates     []Product `json:"candidates,omitempty"`
}

type Session struct {
	ID               string            `json:"id"`
	Location         string            `json:"location"`
	PinnedLocation   string            `json:"pinnedLocation"`
	Phase            string            `json:"phase"`
	Items            []CartItem        `json:"items"`
	Total            string            `json:"total"`
	AddConflict      *AddConflict      `json:"addConflict,omitempty"`
	CheckoutConflict *CheckoutConflict `json:"checkoutConflict,omitempty"`
	Offer            *Offer            `json:"offer,omitempty"`
	Form             CheckoutForm      `json:"form"`
	MissingFields    []string          `json:"missingFields"`
	LastOrderID      string            `json:"lastOrderId,omitempty"`
}

func toProduct(p catalog.PricedProduct) Product {
	return Product{
		ID:                        string(p.Product.ID()),
		Name:                      p.Product.Name(),
		Category:                  p.Product.Category().Code(),
		Style:                     p.Product.Style().String(),
		VolumeLiters:              p.Product.VolumeLiters(),
		BasePrice:                 p.Product.BasePrice().String(),
		Price:                     p.EffectivePrice.String(),
		Popular:                   p.Product.IsPopular(),
		Champion:                  p.Product.IsChampion(),
		RequiresAvailabilityCheck: p.Product.RequiresAvailabilityCheck(),
		Wine:                      p.Product.IsWine(),
	}
}

func toProducts(priced []catalog.PricedProduct) []Product {
	out := make([]Product, 0, len(priced))
	for _, p := range priced {
		out = append(out, toProduct(p))
	}
	return out
}

func toAddConflict(c *cart.AddConflict) *AddConflict {
	if c == nil {
		return nil
	}
	return &AddConflict{
		ProductID:         string(c.ProductID),
		CartLocation:      c.CartLocation.Code(),
		RequestedLocation: c.RequestedLocation.Code(),
	}
}

func toOffer(offer upsell.Offer) *Offer {
	switch o := offer.(type) {
	case *upsell.KegOffer:
		return &Offer{
			Kind:           "keg",
			OfferTonel:     o.OfferTonel,
			OfferMugs:      o.OfferMugs,
			OfferCupsQuote: o.OfferCupsQuote,
		}
	case *upsell.GrowlerOffer:
		candidates := toProducts(o.Candidates)
		if o.MysteryIndex >= 0 && o.MysteryIndex < len(candidates) {
			candidates[o.MysteryIndex].Mystery = true
		}
		return &Offer{Kind: "growler", Candidates: candidates}
	default:
		return nil
	}
}

func toSession(s queries.GetSessionQueryResponse) Session {
	items := make([]CartItem, 0, len(s.Items))
	for _, item := range s.Items {
		extras := item.Extras()
		items = append(items, CartItem{
			ProductID: string(item.ProductID()),
			Name:      item.Product().Name(),
			Category:  item.Product().Category().Code(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			Subtotal:  item.Subtotal().String(),
			RentTonel: extras.RentTonel,
			Mugs:      extras.Mugs.Quantity(),
			CupsQuote: extras.RequestMoreCupsQuote,
			Upsell:    item.IsUpsellOrigin(),
		})
	}

	resp := Session{
		ID:             s.ID.String(),
		Location:       s.Location.Code(),
		PinnedLocation: s.PinnedLocation.Code(),
		Phase:          s.Phase.String(),
		Items:          items,
		Total:          s.Total.String(),
		AddConflict:    toAddConflict(s.AddConflict),
		Offer:          toOffer(s.Offer),
		Form:           fromForm(s.Form),
		MissingFields:  fieldCodes(s.MissingFields),
	}
	if s.CheckoutConflict != nil {
		resp.CheckoutConflict = &CheckoutConflict{
			CartLocation:    s.CheckoutConflict.CartLocation.Code(),
			CurrentLocation: s.CheckoutConflict.CurrentLocation.Code(),
		}
	}
	if s.LastOrderID.Validate() == nil {
		resp.LastOrderID = s.LastOrderID.String()
	}
	return resp
}

func (f CheckoutForm) toDomain() (checkout.Form, error) {
	customerType, err := checkout.ParseCustomerType(f.CustomerType)
	if err != nil {
		return checkout.Form{}, err
	}
	method, err := checkout.ParseDeliveryMethod(f.DeliveryMethod)
	if err != nil {
		return checkout.Form{}, err
	}
	payment, err := checkout.ParsePaymentMethod(f.PaymentMethod)
	if err != nil {
		return checkout.Form{}, err
	}

	return checkout.Form{
		Name:                   f.Name,
		Phone:                  f.Phone,
		CustomerType:           customerType,
		GovernmentID:           f.GovernmentID,
		BirthDate:              f.BirthDate,
		Residential:            checkout.Address(f.Residential),
		DeliveryMethod:         method,
		ShipToDifferentAddress: f.ShipToDifferentAddress,
		DeliveryAddress:        checkout.Address(f.DeliveryAddress),
		EventDetailsDeferred:   f.EventDetailsDeferred,
		Event:                  checkout.EventDetails(f.Event),
		PaymentMethod:          payment,
	}, nil
}

func fromForm(f checkout.Form) CheckoutForm {
	return CheckoutForm{
		Name:                   f.Name,
		Phone:                  f.Phone,
		CustomerType:           f.CustomerType.String(),
		GovernmentID:           f.GovernmentID,
		BirthDate:              f.BirthDate,
		Residential:            Address(f.Residential),
		DeliveryMethod:         f.DeliveryMethod.String(),
		ShipToDifferentAddress: f.ShipToDifferentAddress,
		DeliveryAddress:        Address(f.DeliveryAddress),
		EventDetailsDeferred:   f.EventDetailsDeferred,
		Event:                  Event(f.Event),
		PaymentMethod:          f.PaymentMethod.Code(),
	}
}

func fieldCodes(fields []checkout.Field) []string {
	codes := make([]string, 0, len(fields))
	for _, f := range fields {
		codes = append(codes, f.String())
	}
	return codes
}

func (r AddToCartRequest) extras() (cart.ExtrasPatch, error) {
	patch := cart.ExtrasPatch{RentTonel: r.RentTonel, RequestMoreCupsQuote: r.CupsQuote}
	if r.Mugs != nil {
		tier, err := cart.ParseMugsTier(*r.Mugs)
		if err != nil {
			return cart.ExtrasPatch{}, err
		}
		patch.Mugs = &tier
	}
	return patch, nil
}

func (r UpsellRequest) selection() (upsell.Selection, error) {
	tier, err := cart.ParseMugsTier(r.Mugs)
	if err != nil {
		return upsell.Selection{}, err
	}

	products := make([]catalog.ProductID, 0, len(r.Products))
	for _, id := range r.Products {
		products = append(products, catalog.ProductID(id))
	}
	return upsell.Selection{
		Decline:   r.Decline,
		RentTonel: r.RentTonel,
		Mugs:      tier,
		CupsQuote: r.CupsQuote,
		Products:  products,
	}, nil
}

func parseLocation(code *string) (kernel.Location, error) {
	if code == nil {
		return kernel.LocationUnknown, nil
	}
	return kernel.ParseLocation(*code)
}
