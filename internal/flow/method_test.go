package flow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/donate4khmer/donationflow/internal/models"
)

func TestMethodSelectorDefaults(t *testing.T) {
	t.Parallel()

	s := NewMethodSelector(nil)
	require.Equal(t, models.MethodCreditCard, s.Active())
}

func TestMethodSelectorSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method models.PaymentMethod
		want   models.PaymentMethod
		saved  int
	}{
		{
			name:   "known method",
			method: models.MethodABAPay,
			want:   models.MethodABAPay,
			saved:  1,
		},
		{
			name:   "unknown method ignored",
			method: models.PaymentMethod("paypal"),
			want:   models.MethodCreditCard,
			saved:  0,
		},
		{
			name:   "empty method ignored",
			method: models.PaymentMethod(""),
			want:   models.MethodCreditCard,
			saved:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var saves int
			s := NewMethodSelector(func() { saves++ })
			s.Select(tt.method)
			require.Equal(t, tt.want, s.Active())
			require.Equal(t, tt.saved, saves)
		})
	}
}

func TestMethodSelectorRestore(t *testing.T) {
	t.Parallel()

	var saves int
	s := NewMethodSelector(func() { saves++ })

	s.Restore(models.MethodWingMoney)
	require.Equal(t, models.MethodWingMoney, s.Active())

	// A stored method that is no longer supported falls back to the default.
	s.Restore(models.PaymentMethod("cheque"))
	require.Equal(t, models.MethodCreditCard, s.Active())

	require.Zero(t, saves)
}

func TestPayloadFor(t *testing.T) {
	t.Parallel()

	for method := range models.MethodDisplayNames {
		payload := PayloadFor(method)
		require.NotEmpty(t, payload.Title, "method %s", method)
		require.NotEmpty(t, payload.Body, "method %s", method)
	}

	bank := PayloadFor(models.MethodBankTransfer)
	require.True(t, bank.Copyable)
	require.NotNil(t, bank.Bank)
	require.Equal(t, "Donate4Khmer Org", bank.Bank.AccountName)

	// Only bank transfer exposes the copy action.
	for _, method := range []models.PaymentMethod{
		models.MethodCreditCard, models.MethodABAPay, models.MethodWingMoney,
	} {
		require.False(t, PayloadFor(method).Copyable, "method %s", method)
	}

	unknown := PayloadFor(models.PaymentMethod("paypal"))
	require.Empty(t, unknown.Title)
	require.NotEmpty(t, unknown.Body)
	require.False(t, unknown.Copyable)
}
