package entity

import (
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireField(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, field, validationErr.Field())
}

func TestNewOrderStatus(t *testing.T) {
	tests := []struct {
		name       string
		value      OrderStatusValue
		reason     string
		wantReason string
		wantField  string
	}{
		{name: "approved drops reason", value: OrderStatusApproved, reason: "ignored", wantReason: DefaultRejectionReason},
		{name: "pending", value: OrderStatusPending, wantReason: DefaultRejectionReason},
		{name: "rejected keeps trimmed reason", value: OrderStatusRejected, reason: " Wrong TxnID ", wantReason: "Wrong TxnID"},
		{name: "rejected without reason", value: OrderStatusRejected, wantField: "rejectionReason"},
		{name: "rejected with placeholder", value: OrderStatusRejected, reason: "n/a", wantField: "rejectionReason"},
		{name: "unknown value", value: "Shipped", wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NewOrderStatus(tt.value, tt.reason)
			if tt.wantField != "" {
				requireField(t, err, tt.wantField)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, status.Value)
			assert.Equal(t, tt.wantReason, status.RejectionReason)
		})
	}
}

func TestBilling_Validate(t *testing.T) {
	valid := Billing{Name: "Jane", Phone: "01700000000", Email: "jane@example.com"}
	require.NoError(t, valid.Validate())

	noEmail := valid
	noEmail.Email = ""
	require.NoError(t, noEmail.Validate())

	tests := []struct {
		name    string
		billing Billing
		field   string
	}{
		{name: "missing name", billing: Billing{Phone: "01700000000"}, field: "name"},
		{name: "short phone", billing: Billing{Name: "Jane", Phone: "0170000"}, field: "phone"},
		{name: "letters in phone", billing: Billing{Name: "Jane", Phone: "0170000000a"}, field: "phone"},
		{name: "signed phone", billing: Billing{Name: "Jane", Phone: "-1234567890"}, field: "phone"},
		{name: "plus prefixed phone", billing: Billing{Name: "Jane", Phone: "+1234567890"}, field: "phone"},
		{name: "decimal point in phone", billing: Billing{Name: "Jane", Phone: "1234.567890"}, field: "phone"},
		{name: "bad email", billing: Billing{Name: "Jane", Phone: "01700000000", Email: "jane@"}, field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireField(t, tt.billing.Validate(), tt.field)
		})
	}
}

func TestBilling_Normalize(t *testing.T) {
	got := Billing{Name: " Jane ", Phone: " 01700000000 ", Email: " Jane@Example.COM "}.Normalize()

	assert.Equal(t, Billing{Name: "Jane", Phone: "01700000000", Email: "jane@example.com"}, got)
}

func TestComputeTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("99.50")},
		{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("0.10")},
	}

	assert.True(t, decimal.RequireFromString("199.10").Equal(ComputeTotal(items)))
	assert.True(t, decimal.Zero.Equal(ComputeTotal(nil)))
}
