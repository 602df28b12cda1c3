// Package models defines the domain entities for the donation flow.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod identifies one of the supported payment channels.
type PaymentMethod string

// Supported payment methods.
const (
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodABAPay       PaymentMethod = "aba_pay"
	MethodWingMoney    PaymentMethod = "wing_money"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// DefaultMethod is the active method when no preference is stored.
const DefaultMethod = MethodCreditCard

// MethodDisplayNames maps method identifiers to human-readable names.
var MethodDisplayNames = map[PaymentMethod]string{
	MethodCreditCard:   "Credit / Debit Card",
	MethodABAPay:       "ABA Pay",
	MethodWingMoney:    "Wing Money",
	MethodBankTransfer: "Bank Transfer",
}

// Valid reports whether m is one of the supported methods.
func (m PaymentMethod) Valid() bool {
	_, ok := MethodDisplayNames[m]
	return ok
}

// DisplayName returns the human-readable name for the method.
func (m PaymentMethod) DisplayName() string {
	if name, ok := MethodDisplayNames[m]; ok {
		return name
	}
	return "Unknown method"
}

// BankAccount holds the transfer details exposed by the bank_transfer payload.
type BankAccount struct {
	AccountName   string
	AccountNumber string
	SwiftCode     string
}

// OrgBankAccount is the organisation's receiving account shown for bank transfers.
var OrgBankAccount = BankAccount{
	AccountName:   "Donate4Khmer Org",
	AccountNumber: "123-456-7890",
	SwiftCode:     "ABCCKHPP",
}

// MethodPayload is the fixed instructional content displayed for a method.
type MethodPayload struct {
	Title    string
	Body     []string
	Bank     *BankAccount
	Copyable bool
}

// Preferences is the persisted pair of last-entered amount and chosen method.
// Amount is kept verbatim as typed, including invalid text, so the input
// field can echo it back after a reload.
type Preferences struct {
	Amount string
	Method PaymentMethod
}

// Project is a fundraising cause tracked by the ledger.
type Project struct {
	ID            string
	Title         string
	Description   string
	CurrentAmount decimal.Decimal
	GoalAmount    decimal.Decimal
	Image         string
	FallbackImage string
}

// PaymentOutcome is the resolution state of a payment attempt.
type PaymentOutcome string

// Payment attempt outcomes.
const (
	OutcomePending PaymentOutcome = "pending"
	OutcomeSuccess PaymentOutcome = "success"
	OutcomeFailure PaymentOutcome = "failure"
)

// PaymentAttempt is one ephemeral run of the simulated payment. It exists
// from the moment the pay action starts until the confirmation modal closes.
type PaymentAttempt struct {
	ID        string
	Amount    decimal.Decimal
	Method    PaymentMethod
	Outcome   PaymentOutcome
	StartedAt time.Time
}

// QuickAmounts are the suggested one-click donation presets, in display order.
var QuickAmounts = []decimal.Decimal{
	decimal.NewFromInt(5),
	decimal.NewFromInt(10),
	decimal.NewFromInt(25),
	decimal.NewFromInt(50),
	decimal.NewFromInt(100),
}
