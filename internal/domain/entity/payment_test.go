package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	fields := PaymentFields{
		BkashNumber: " 01700000000 ",
		BkashTxnID:  "TX1",
		NagadNumber: "01800000000",
		UpayNumber:  "01900000000",
	}

	t.Run("keeps only the fields of the method", func(t *testing.T) {
		payment, err := NewPayment("Bkash", fields)

		require.NoError(t, err)
		assert.Equal(t, PaymentMethodBkash, payment.Method())
		assert.Equal(t, PaymentFields{BkashNumber: "01700000000", BkashTxnID: "TX1"}, payment.Fields())
	})

	t.Run("nagad", func(t *testing.T) {
		payment, err := NewPayment(PaymentMethodNagad, fields)

		require.NoError(t, err)
		assert.Equal(t, PaymentFields{NagadNumber: "01800000000"}, payment.Fields())
	})

	t.Run("upay", func(t *testing.T) {
		payment, err := NewPayment(PaymentMethodUpay, fields)

		require.NoError(t, err)
		assert.Equal(t, PaymentFields{UpayNumber: "01900000000"}, payment.Fields())
	})
}

func TestNewPayment_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		method PaymentMethod
		fields PaymentFields
		field  string
	}{
		{name: "unknown method", method: "paypal", field: "paymentMethod"},
		{name: "bkash without txn id", method: PaymentMethodBkash, fields: PaymentFields{BkashNumber: "01700000000"}, field: "bkashTxnId"},
		{name: "bkash without number", method: PaymentMethodBkash, fields: PaymentFields{BkashTxnID: "TX1"}, field: "bkashNumber"},
		{name: "nagad without number", method: PaymentMethodNagad, fields: PaymentFields{BkashNumber: "01700000000"}, field: "nagadNumber"},
		{name: "upay without number", method: PaymentMethodUpay, field: "upayNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPayment(tt.method, tt.fields)

			requireField(t, err, tt.field)
		})
	}
}

func TestRestorePayment_SkipsValidation(t *testing.T) {
	payment, ok := RestorePayment(PaymentMethodUpay, PaymentFields{})

	require.True(t, ok)
	assert.Error(t, payment.Validate())

	_, ok = RestorePayment("cash", PaymentFields{})
	assert.False(t, ok)
}
