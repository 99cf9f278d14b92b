package checkout

// Field names one input of the checkout form.
type Field int

const (
	FieldName Field = iota + 1
	FieldPhone
	FieldPaymentMethod
	FieldGovernmentID
	FieldBirthDate
	FieldResidentialStreet
	FieldResidentialNeighborhood
	FieldResidentialCity
	FieldReceiverName
	FieldEventAddress
	FieldEventCity
	FieldEventDate
	FieldDeliveryStreet
	FieldDeliveryNeighborhood
	FieldDeliveryCity
)

func getFieldCodes() map[Field]string {
	return map[Field]string{
		FieldName:                    "name",
		FieldPhone:                   "phone",
		FieldPaymentMethod:           "paymentMethod",
		FieldGovernmentID:            "governmentId",
		FieldBirthDate:               "birthDate",
		FieldResidentialStreet:       "residentialStreet",
		FieldResidentialNeighborhood: "residentialNeighborhood",
		FieldResidentialCity:         "residentialCity",
		FieldReceiverName:            "receiverName",
		FieldEventAddress:            "eventAddress",
		FieldEventCity:               "eventCity",
		FieldEventDate:               "eventDate",
		FieldDeliveryStreet:          "deliveryStreet",
		FieldDeliveryNeighborhood:    "deliveryNeighborhood",
		FieldDeliveryCity:            "deliveryCity",
	}
}

// String returns the camelCase code used on the wire.
func (f Field) String() string {
	if code, ok := getFieldCodes()[f]; ok {
		return code
	}
	return "unknown"
}

// IsAddress reports whether f belongs to the residential or delivery triple.
func (f Field) IsAddress() bool {
	return f >= FieldResidentialStreet && f <= FieldResidentialCity ||
		f >= FieldDeliveryStreet && f <= FieldDeliveryCity
}

// IsEvent reports whether f belongs to the keg event block.
func (f Field) IsEvent() bool {
	return f >= FieldReceiverName && f <= FieldEventDate
}

// isFilled reports whether the form has a value for f.
func (f Form) isFilled(field Field) bool {
	switch field {
	case FieldName:
		return !isBlank(f.Name)
	case FieldPhone:
		return !isBlank(f.Phone)
	case FieldPaymentMethod:
		return f.PaymentMethod.IsSet()
	case FieldGovernmentID:
		return !isBlank(f.GovernmentID)
	case FieldBirthDate:
		return !isBlank(f.BirthDate)
	case FieldResidentialStreet:
		return !isBlank(f.Residential.Street)
	case FieldResidentialNeighborhood:
		return !isBlank(f.Residential.Neighborhood)
	case FieldResidentialCity:
		return !isBlank(f.Residential.City)
	case FieldReceiverName:
		return !isBlank(f.Event.ReceiverName)
	case FieldEventAddress:
		return !isBlank(f.Event.Address)
	case FieldEventCity:
		return !isBlank(f.Event.City)
	case FieldEventDate:
		return !isBlank(f.Event.Date)
	case FieldDeliveryStreet:
		return !isBlank(f.DeliveryAddress.Street)
	case FieldDeliveryNeighborhood:
		return !isBlank(f.DeliveryAddress.Neighborhood)
	case FieldDeliveryCity:
		return !isBlank(f.DeliveryAddress.City)
	}
	return false
}
