package entity

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"
)

// PaymentMethod is the manual mobile-wallet channel a customer paid through.
type PaymentMethod string

const (
	PaymentMethodBkash PaymentMethod = "bkash"
	PaymentMethodNagad PaymentMethod = "nagad"
	PaymentMethodUpay  PaymentMethod = "upay"
)

// String returns the string representation of the PaymentMethod.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentFields is the flat form of payment proof as it arrives from a client
// and as it is stored. Only the fields of the selected method are meaningful.
type PaymentFields struct {
	BkashNumber string
	BkashTxnID  string
	NagadNumber string
	UpayNumber  string
}

// Payment is the proof of payment for one method. Each variant carries exactly
// the fields its method requires.
type Payment interface {
	Method() PaymentMethod
	Fields() PaymentFields
	Validate() error
}

// BkashPayment requires the paying account and the wallet transaction id.
type BkashPayment struct {
	AccountNumber string
	TxnID         string
}

func (p BkashPayment) Method() PaymentMethod { return PaymentMethodBkash }

func (p BkashPayment) Fields() PaymentFields {
	return PaymentFields{BkashNumber: p.AccountNumber, BkashTxnID: p.TxnID}
}

func (p BkashPayment) Validate() error {
	if strings.TrimSpace(p.AccountNumber) == "" {
		return domainerrors.NewValidationError("bkashNumber", "bKash account number is required")
	}
	if strings.TrimSpace(p.TxnID) == "" {
		return domainerrors.NewValidationError("bkashTxnId", "bKash transaction id is required")
	}

	return nil
}

// NagadPayment requires the paying account.
type NagadPayment struct {
	AccountNumber string
}

func (p NagadPayment) Method() PaymentMethod { return PaymentMethodNagad }

func (p NagadPayment) Fields() PaymentFields {
	return PaymentFields{NagadNumber: p.AccountNumber}
}

func (p NagadPayment) Validate() error {
	if strings.TrimSpace(p.AccountNumber) == "" {
		return domainerrors.NewValidationError("nagadNumber", "Nagad account number is required")
	}

	return nil
}

// UpayPayment requires the paying account.
type UpayPayment struct {
	AccountNumber string
}

func (p UpayPayment) Method() PaymentMethod { return PaymentMethodUpay }

func (p UpayPayment) Fields() PaymentFields {
	return PaymentFields{UpayNumber: p.AccountNumber}
}

func (p UpayPayment) Validate() error {
	if strings.TrimSpace(p.AccountNumber) == "" {
		return domainerrors.NewValidationError("upayNumber", "Upay account number is required")
	}

	return nil
}

// NewPayment builds the variant for method from the flat fields and validates it.
// Fields that belong to other methods are dropped.
func NewPayment(method PaymentMethod, fields PaymentFields) (Payment, error) {
	payment, ok := RestorePayment(method, fields)
	if !ok {
		return nil, domainerrors.NewValidationError("paymentMethod", "payment method must be one of bkash, nagad, upay")
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	return payment, nil
}

// RestorePayment rebuilds a stored payment without validating it.
func RestorePayment(method PaymentMethod, fields PaymentFields) (Payment, bool) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(string(method)))) {
	case PaymentMethodBkash:
		return BkashPayment{
			AccountNumber: strings.TrimSpace(fields.BkashNumber),
			TxnID:         strings.TrimSpace(fields.BkashTxnID),
		}, true
	case PaymentMethodNagad:
		return NagadPayment{AccountNumber: strings.TrimSpace(fields.NagadNumber)}, true
	case PaymentMethodUpay:
		return UpayPayment{AccountNumber: strings.TrimSpace(fields.UpayNumber)}, true
	default:
		return nil, false
	}
}
