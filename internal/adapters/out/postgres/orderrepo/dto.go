// Package orderrepo maps the order aggregate to the order journal tables:
// one orders row per submitted order and one order_lines row per line.
package orderrepo

import (
	"slices"
	"time"

	"taproom/internal/core/domain/model/cart"
	"taproom/internal/core/domain/model/catalog"
	"taproom/internal/core/domain/model/checkout"
	"taproom/internal/core/domain/model/kernel"
	"taproom/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Upsell-origin lines are recorded once, as the
// upsell_product_ids array, so reports can query them without joining lines.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Location string    `gorm:"type:varchar(64);not null;index"`

	CustomerName  string     `gorm:"type:varchar(255);not null"`
	CustomerPhone string     `gorm:"type:varchar(64);not null"`
	CustomerType  int        `gorm:"type:smallint;not null"`
	GovernmentID  string     `gorm:"type:varchar(32)"`
	BirthDate     string     `gorm:"type:varchar(32)"`
	Residential   AddressDTO `gorm:"embedded;embeddedPrefix:residential_"`

	DeliveryMethod       int        `gorm:"type:smallint;not null"`
	Delivery             AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Event                EventDTO   `gorm:"embedded;embeddedPrefix:event_"`
	EventDetailsDeferred bool

	PaymentMethod    int             `gorm:"type:smallint;not null"`
	Freight          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	UpsellProductIDs pq.StringArray  `gorm:"type:text[]"`
	CreatedAt        time.Time       `gorm:"not null;index"`
	Status           int             `gorm:"type:smallint;not null;index"`

	Lines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is an optional embedded address; Set distinguishes an absent
// address from a blank one.
type AddressDTO struct {
	Set          bool
	Street       string `gorm:"type:varchar(255)"`
	Neighborhood string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255)"`
}

type EventDTO struct {
	Set          bool
	ReceiverName string `gorm:"type:varchar(255)"`
	Address      string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255)"`
	Date         string `gorm:"type:varchar(32)"`
	Time         string `gorm:"type:varchar(32)"`
	Voltage      string `gorm:"type:varchar(16)"`
}

// OrderLineDTO is one order_lines row, keyed by order and position.
type OrderLineDTO struct {
	OrderID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position       int             `gorm:"primaryKey"`
	ProductID      string          `gorm:"type:varchar(128);not null"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Category       int             `gorm:"type:smallint;not null"`
	Quantity       int             `gorm:"not null"`
	EffectivePrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	RentTonel      bool
	Mugs           int `gorm:"type:smallint"`
	CupsQuote      bool
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	customer := o.Customer()
	fulfillment := o.Fulfillment()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	upsell := pq.StringArray{}
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:        orderID,
			Position:       i,
			ProductID:      string(l.ProductID),
			Name:           l.Name,
			Category:       int(l.Category),
			Quantity:       l.Quantity,
			EffectivePrice: l.EffectivePrice.Decimal(),
			RentTonel:      l.Extras.RentTonel,
			Mugs:           int(l.Extras.Mugs),
			CupsQuote:      l.Extras.RequestMoreCupsQuote,
		})
		if l.UpsellOrigin {
			upsell = append(upsell, string(l.ProductID))
		}
	}

	return OrderDTO{
		ID:                   orderID,
		Location:             o.Location().Code(),
		CustomerName:         customer.Name,
		CustomerPhone:        customer.Phone,
		CustomerType:         int(customer.Type),
		GovernmentID:         customer.GovernmentID,
		BirthDate:            customer.BirthDate,
		Residential:          addressFromDomain(customer.Residential),
		DeliveryMethod:       int(fulfillment.Method),
		Delivery:             addressFromDomain(fulfillment.Address),
		Event:                eventFromDomain(fulfillment.Event),
		EventDetailsDeferred: fulfillment.EventDetailsDeferred,
		PaymentMethod:        int(o.PaymentMethod()),
		Freight:              o.Freight().Decimal(),
		Total:                o.Total().Decimal(),
		UpsellProductIDs:     upsell,
		CreatedAt:            o.CreatedAt(),
		Status:               int(o.Status()),
		Lines:                lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.ParseLocation(dto.Location)
	if err != nil {
		return nil, err
	}

	freight, err := kernel.NewMoney(dto.Freight)
	if err != nil {
		return nil, err
	}

	lines, err := linesToDomain(dto.Lines, dto.UpsellProductIDs)
	if err != nil {
		return nil, err
	}

	customer := order.Customer{
		Name:         dto.CustomerName,
		Phone:        dto.CustomerPhone,
		Type:         checkout.CustomerType(dto.CustomerType),
		GovernmentID: dto.GovernmentID,
		BirthDate:    dto.BirthDate,
		Residential:  dto.Residential.toDomain(),
	}
	fulfillment := order.Fulfillment{
		Method:               checkout.DeliveryMethod(dto.DeliveryMethod),
		Address:              dto.Delivery.toDomain(),
		Event:                dto.Event.toDomain(),
		EventDetailsDeferred: dto.EventDetailsDeferred,
	}

	return order.RestoreOrder(
		id,
		location,
		customer,
		fulfillment,
		lines,
		checkout.PaymentMethod(dto.PaymentMethod),
		freight,
		dto.CreatedAt,
		order.Status(dto.Status),
	)
}

func linesToDomain(dtos []OrderLineDTO, upsell pq.StringArray) ([]order.Line, error) {
	slices.SortFunc(dtos, func(a, b OrderLineDTO) int { return a.Position - b.Position })

	lines := make([]order.Line, 0, len(dtos))
	for _, dto := range dtos {
		price, err := kernel.NewMoney(dto.EffectivePrice)
		if err != nil {
			return nil, err
		}

		lines = append(lines, order.Line{
			ProductID: catalog.ProductID(dto.ProductID),
			Name:      dto.Name,
			Category:  catalog.Category(dto.Category),
			Quantity:  dto.Quantity,
			Extras: cart.Extras{
				RentTonel:            dto.RentTonel,
				Mugs:                 cart.MugsTier(dto.Mugs),
				RequestMoreCupsQuote: dto.CupsQuote,
			},
			EffectivePrice: price,
			UpsellOrigin:   slices.Contains(upsell, dto.ProductID),
		})
	}
	return lines, nil
}

func addressFromDomain(a *checkout.Address) AddressDTO {
	if a == nil {
		return AddressDTO{}
	}
	return AddressDTO{Set: true, Street: a.Street, Neighborhood: a.Neighborhood, City: a.City}
}

func (a AddressDTO) toDomain() *checkout.Address {
	if !a.Set {
		return nil
	}
	return &checkout.Address{Street: a.Street, Neighborhood: a.Neighborhood, City: a.City}
}

func eventFromDomain(e *checkout.EventDetails) EventDTO {
	if e == nil {
		return EventDTO{}
	}
	return EventDTO{
		Set:          true,
		ReceiverName: e.ReceiverName,
		Address:      e.Address,
		City:         e.City,
		Date:         e.Date,
		Time:         e.Time,
		Voltage:      e.Voltage,
	}
}

func (e EventDTO) toDomain() *checkout.EventDetails {
	if !e.Set {
		return nil
	}
	return &checkout.EventDetails{
		ReceiverName: e.ReceiverName,
		Address:      e.Address,
		City:         e.City,
		Date:         e.Date,
		Time:         e.Time,
		Voltage:      e.Voltage,
	}
}
