// Package main is the entry point for the donation page controller, driven
// interactively from the terminal.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"

	"gitlab.com/donate4khmer/donationflow/internal/clipboard"
	"gitlab.com/donate4khmer/donationflow/internal/config"
	"gitlab.com/donate4khmer/donationflow/internal/donation"
	"gitlab.com/donate4khmer/donationflow/internal/flow"
	"gitlab.com/donate4khmer/donationflow/internal/ledger"
	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/modal"
	"gitlab.com/donate4khmer/donationflow/internal/models"
	"gitlab.com/donate4khmer/donationflow/internal/prefs"
	"gitlab.com/donate4khmer/donationflow/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("donationflow %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger.SetLevel(cfg.LogLevel)

	sess := session.New(
		cfg,
		prefs.NewFileStore(cfg.PrefsPath),
		modal.TimerScheduler{},
		flow.RandomOutcome{Rate: cfg.PaymentSuccessRate},
		clipboard.SystemWriter{},
	)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")
		cancel()
	}()

	runPrompt(ctx, sess)
}

// runPrompt reads commands from stdin and applies them to the session until
// EOF, "quit" or cancellation.
func runPrompt(ctx context.Context, sess *session.Session) {
	fmt.Println("donate4khmer — type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "show":
			printView(sess.Render())
		case "amount":
			sess.EnterAmount(strings.Join(args, " "))
			printView(sess.Render())
		case "quick":
			if len(args) != 1 {
				fmt.Println("usage: quick <value>")
				continue
			}
			value, err := decimal.NewFromString(args[0])
			if err != nil {
				fmt.Println("usage: quick <value>")
				continue
			}
			sess.SelectQuickAmount(value)
			printView(sess.Render())
		case "method":
			if len(args) != 1 {
				fmt.Println("usage: method <credit_card|aba_pay|wing_money|bank_transfer>")
				continue
			}
			sess.SelectMethod(models.PaymentMethod(args[0]))
			printView(sess.Render())
		case "pay":
			sess.Pay()
			printView(sess.Render())
		case "copy":
			sess.CopyMethodDetails()
			printView(sess.Render())
		case "projects":
			printCards(sess.Ledger.Cards())
		case "chart":
			if len(args) != 1 {
				fmt.Println("usage: chart <file.png>")
				continue
			}
			writeChart(sess, args[0])
		case "open":
			preselect := ""
			if len(args) > 0 {
				preselect = args[0]
			}
			sess.OpenDonationDialog(preselect)
			printView(sess.Render())
		case "give":
			if len(args) < 3 {
				fmt.Println("usage: give <cause-id> <amount> <donor name>")
				continue
			}
			sess.SubmitDonation(donation.Form{
				CauseID:   args[0],
				Amount:    args[1],
				DonorName: strings.Join(args[2:], " "),
			})
			printView(sess.Render())
		case "close":
			sess.Donation.Close()
			printView(sess.Render())
		case "ok":
			sess.ConfirmModal.Close()
			printView(sess.Render())
		case "again":
			sess.Payment.DonateAgain()
			printView(sess.Render())
		default:
			fmt.Printf("unknown command %q — type 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Print(`commands:
  show                         render current state
  amount <text>                type a donation amount
  quick <value>                press a quick-amount button
  method <id>                  select a payment method
  pay                          submit the payment
  copy                         copy bank transfer details
  projects                     list fundraising projects
  chart <file.png>             export a progress chart
  open [cause-id]              open the donation dialog
  give <cause> <amount> <name> submit the donation form
  close | ok | again           dialog actions
  quit
`)
}

func printView(v session.View) {
	fmt.Printf("amount: %q", v.Amount.Raw)
	if v.Amount.ShowError {
		fmt.Print("  [invalid amount]")
	}
	for _, preset := range v.Amount.Presets {
		if preset.Active {
			fmt.Printf("  [preset $%s]", preset.Value.String())
		}
	}
	fmt.Println()

	fmt.Printf("method: %s — %s\n", v.Method.Active.DisplayName(), v.Method.Payload.Title)
	if bank := v.Method.Payload.Bank; bank != nil {
		fmt.Printf("  %s / %s / %s\n", bank.AccountName, bank.AccountNumber, bank.SwiftCode)
	}

	fmt.Printf("pay button: %q", v.PayButton.Label)
	if !v.PayButton.Enabled {
		fmt.Print(" (disabled)")
	}
	if v.PayButton.Spinner {
		fmt.Print(" [spinner]")
	}
	fmt.Println()

	if v.Toast.State != clipboard.ToastHidden {
		fmt.Printf("toast: %s (%s)\n", v.Toast.Message, v.Toast.State)
	}
	if v.Confirm != nil {
		fmt.Printf("confirm modal [%s]: %s — %s\n", v.ConfirmState, v.Confirm.Title, v.Confirm.Message)
		if v.Confirm.ShowSecondary {
			fmt.Println("  (secondary: donate again)")
		}
	}
	if v.DonationState != modal.StateClosed {
		fmt.Printf("donation dialog [%s]\n", v.DonationState)
		for _, cause := range v.Donation.Causes {
			marker := " "
			if cause.Selected {
				marker = "*"
			}
			fmt.Printf("  %s %s — %s\n", marker, cause.ID, cause.Title)
		}
		e := v.Donation.Errors
		if e.Any() {
			fmt.Printf("  errors: name=%v amount=%v cause=%v\n", e.DonorName, e.Amount, e.Cause)
		}
		if v.Donation.ShowSuccess {
			fmt.Println("  thank you! your donation was received.")
		}
	}
	if v.ScrollLocked {
		fmt.Println("(background scroll locked)")
	}
}

func printCards(cards []ledger.Card) {
	for _, card := range cards {
		fmt.Printf("%-22s $%s of $%s (%.1f%%)\n",
			card.ID,
			card.CurrentAmount.StringFixed(0),
			card.GoalAmount.StringFixed(0),
			card.BarPercent,
		)
	}
}

func writeChart(sess *session.Session, path string) {
	png, err := sess.Ledger.RenderProgressChart()
	if err != nil {
		fmt.Printf("chart failed: %v\n", err)
		return
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		fmt.Printf("chart failed: %v\n", err)
		return
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(png))
}
