// Package clipboard copies bank transfer details to the system clipboard and
// reports the result through a transient toast.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// Writer places text on a clipboard. The system writer uses the platform
// clipboard; tests substitute an in-memory one.
type Writer interface {
	Write(text string) error
}

// SystemWriter writes through the best available platform mechanism.
type SystemWriter struct{}

// Write puts text on the system clipboard.
func (SystemWriter) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// BlockFor assembles the fixed three-line text block copied for a bank
// account.
func BlockFor(bank models.BankAccount) string {
	return fmt.Sprintf(
		"Account Name: %s\nAccount Number: %s\nSWIFT Code: %s",
		bank.AccountName, bank.AccountNumber, bank.SwiftCode,
	)
}
