package checkout

// CartProfile is the slice of cart state the form rules depend on.
type CartProfile struct {
	HasKeg bool
}

// RequiredFields derives the required-field set from the form and cart profile,
// in display order. It is pure: the same inputs always give the same fields.
func RequiredFields(form Form, profile CartProfile) []Field {
	fields := []Field{FieldName, FieldPhone, FieldPaymentMethod}

	if form.CustomerType == NewCustomer {
		fields = append(fields,
			FieldGovernmentID,
			FieldBirthDate,
			FieldResidentialStreet,
			FieldResidentialNeighborhood,
			FieldResidentialCity,
		)
	}

	if profile.HasKeg {
		if !form.EventDetailsDeferred {
			fields = append(fields, FieldReceiverName, FieldEventAddress, FieldEventCity, FieldEventDate)
		}
		return fields
	}

	if form.DeliveryMethod == Delivery && needsSeparateDeliveryAddress(form) {
		fields = append(fields, FieldDeliveryStreet, FieldDeliveryNeighborhood, FieldDeliveryCity)
	}

	return fields
}

// MissingFields returns the required fields the form leaves blank. Submission
// is allowed only when it is empty.
func MissingFields(form Form, profile CartProfile) []Field {
	var missing []Field
	for _, field := range RequiredFields(form, profile) {
		if !form.isFilled(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsComplete reports whether every required field is filled.
func IsComplete(form Form, profile CartProfile) bool {
	return len(MissingFields(form, profile)) == 0
}

func needsSeparateDeliveryAddress(form Form) bool {
	return form.CustomerType != NewCustomer || form.ShipToDifferentAddress
}
