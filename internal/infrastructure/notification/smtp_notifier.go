package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"net/url"
	"os"
	"strings"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/usecase"
	"rentalquotes/internal/usecase/interfaces"
)

var ErrMissingSMTPAddr = errors.New("missing SMTP_ADDR")
var ErrMissingSMTPFrom = errors.New("missing SMTP_FROM")
var ErrMissingAdminEmail = errors.New("missing ADMIN_EMAIL")

// Settings carries the site identity used in mail bodies and quick-send
// links.
type Settings struct {
	SiteName   string
	SiteURL    string
	AdminEmail string
	SMTPAddr   string
	SMTPFrom   string
}

func SettingsFromEnv() Settings {
	return Settings{
		SiteName:   os.Getenv("SITE_NAME"),
		SiteURL:    os.Getenv("SITE_URL"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		SMTPAddr:   os.Getenv("SMTP_ADDR"),
		SMTPFrom:   os.Getenv("SMTP_FROM"),
	}
}

// sendFunc matches smtp.SendMail and is swapped out in tests and mock mode.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier sends the admin alert when a quote is derived and the
// customer quote mail when a quick-send link is used.
type SMTPNotifier struct {
	settings Settings
	quotes   interfaces.IQuoteRepository
	secrets  interfaces.ISecretProvider
	log      *slog.Logger
	send     sendFunc
	mockMode bool
}

var _ interfaces.INotificationService = (*SMTPNotifier)(nil)

func NewSMTPNotifier(settings Settings, quotes interfaces.IQuoteRepository, secrets interfaces.ISecretProvider, log *slog.Logger) (*SMTPNotifier, error) {
	n := &SMTPNotifier{
		settings: settings,
		quotes:   quotes,
		secrets:  secrets,
		log:      log,
		send:     smtp.SendMail,
	}

	if isNotifierMockEnabled() {
		log.Info("notifier mock mode enabled")
		n.mockMode = true
		return n, nil
	}

	switch {
	case settings.SMTPAddr == "":
		return nil, ErrMissingSMTPAddr
	case settings.SMTPFrom == "":
		return nil, ErrMissingSMTPFrom
	case settings.AdminEmail == "":
		return nil, ErrMissingAdminEmail
	}
	return n, nil
}

// NotifyAdmins mails the configured admin address a summary of a freshly
// derived quote together with its one-time quick-send link.
func (n *SMTPNotifier) NotifyAdmins(ctx context.Context, quoteID string, draft entities.DerivedQuoteDraft) error {
	q, err := n.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return fmt.Errorf("quote %s not found", quoteID)
	}

	subject := fmt.Sprintf("New rental enquiry from %s", q.CustomerName)
	body := n.adminBody(q, draft)
	return n.deliver(ctx, n.settings.AdminEmail, subject, body)
}

// SendQuoteEmail mails the customer their quote. Callers gate it on the
// quote having a price.
func (n *SMTPNotifier) SendQuoteEmail(ctx context.Context, quoteID string) error {
	q, err := n.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return fmt.Errorf("quote %s not found", quoteID)
	}
	if q.CustomerEmail == "" {
		return fmt.Errorf("quote %s has no customer email", quoteID)
	}

	subject := fmt.Sprintf("Your quote from %s", n.settings.SiteName)
	body := n.customerBody(q)
	return n.deliver(ctx, q.CustomerEmail, subject, body)
}

func (n *SMTPNotifier) deliver(_ context.Context, to, subject, body string) error {
	if n.mockMode {
		n.log.Info("mock mail delivery",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.Int("body_len", len(body)))
		return nil
	}

	msg := []byte("From: " + n.settings.SMTPFrom + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body)

	if err := n.send(n.settings.SMTPAddr, nil, n.settings.SMTPFrom, []string{to}, msg); err != nil {
		n.log.Error("mail delivery failed",
			slog.String("to", to),
			slog.String("subject", subject),
			slog.String("error", err.Error()))
		return err
	}
	n.log.Info("mail delivered", slog.String("to", to), slog.String("subject", subject))
	return nil
}

func (n *SMTPNotifier) adminBody(q entities.Quote, draft entities.DerivedQuoteDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A new rental enquiry arrived on %s.\n\n", n.settings.SiteName)
	fmt.Fprintf(&b, "Name: %s\n", q.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", q.CustomerEmail)
	if q.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", q.CustomerPhone)
	}
	if q.VehicleName != "" {
		fmt.Fprintf(&b, "Vehicle: %s\n", q.VehicleName)
	}
	if q.RentalDates != "" {
		fmt.Fprintf(&b, "Dates: %s (%d days)\n", q.RentalDates, q.RentalDays)
	}
	if q.RentalPrice > 0 {
		fmt.Fprintf(&b, "Calculated price: %.2f\n", q.RentalPrice)
	}
	if draft.VehicleDetails != "" {
		fmt.Fprintf(&b, "\nDerivation notes:\n%s\n", draft.VehicleDetails)
	}
	fmt.Fprintf(&b, "\nSend the quote with one click:\n%s\n", n.quickSendLink(q))
	return b.String()
}

func (n *SMTPNotifier) customerBody(q entities.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", q.CustomerName)
	fmt.Fprintf(&b, "Thanks for your enquiry on %s. Here is your quote:\n\n", n.settings.SiteName)
	if q.VehicleName != "" {
		fmt.Fprintf(&b, "Vehicle: %s\n", q.VehicleName)
	}
	if q.RentalDates != "" {
		fmt.Fprintf(&b, "Dates: %s (%d days)\n", q.RentalDates, q.RentalDays)
	}
	fmt.Fprintf(&b, "Total price: %.2f\n", q.RentalPrice)
	if q.DepositAmount > 0 {
		fmt.Fprintf(&b, "Deposit: %.2f\n", q.DepositAmount)
	}
	if q.MileageAllowance != "" {
		fmt.Fprintf(&b, "Mileage allowance: %s miles\n", q.MileageAllowance)
	}
	fmt.Fprintf(&b, "\nView your quote online:\n%s/quote/%s\n", strings.TrimRight(n.settings.SiteURL, "/"), q.QuoteHash)
	fmt.Fprintf(&b, "\n%s\n", n.settings.SiteName)
	return b.String()
}

func (n *SMTPNotifier) quickSendLink(q entities.Quote) string {
	token := usecase.DeriveQuickSendToken(q.ID, q.QuoteHash, n.secrets.QuickSendSecret())
	v := url.Values{}
	v.Set("crqa_action", "quick_send")
	v.Set("quote_id", q.ID)
	v.Set("token", token)
	return strings.TrimRight(n.settings.SiteURL, "/") + "/?" + v.Encode()
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFIER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
