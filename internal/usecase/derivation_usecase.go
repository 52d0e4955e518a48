package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentalquotes/internal/domain/entities"
	"rentalquotes/internal/domain/matching"
	"rentalquotes/internal/domain/parsing"
	"rentalquotes/internal/domain/smarttag"
	"rentalquotes/internal/platform/logging"
	"rentalquotes/internal/usecase/interfaces"
)

var (
	ErrFormConfigNotFound   = errors.New("form config not found")
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrMissingCustomerEmail = errors.New("customer email is required")
)

// DefaultDepositAmount applies when neither the draft nor the catalog
// carries a deposit.
const DefaultDepositAmount = 250

// IQuoteDerivationUseCase turns a raw form submission into a persisted
// quote.
type IQuoteDerivationUseCase interface {
	Derive(ctx context.Context, formID string, sub entities.SubmissionContext) (entities.Quote, error)
}

// DerivationPipeline runs the ordered stages resolve -> match -> price ->
// persist. The stages are exported so a harness can drive them one at a
// time without the HTTP layer.
type DerivationPipeline struct {
	configs  interfaces.IFormConfigRepository
	catalog  interfaces.ICatalogService
	quotes   interfaces.IQuoteRepository
	notifier interfaces.INotificationService
	tags     *smarttag.Resolver
	matchCfg matching.Config
	deposit  float64
	log      *slog.Logger
}

var _ IQuoteDerivationUseCase = (*DerivationPipeline)(nil)

func NewDerivationPipeline(
	configs interfaces.IFormConfigRepository,
	catalog interfaces.ICatalogService,
	quotes interfaces.IQuoteRepository,
	notifier interfaces.INotificationService,
	tags *smarttag.Resolver,
	matchCfg matching.Config,
	defaultDeposit float64,
	log *slog.Logger,
) *DerivationPipeline {
	if defaultDeposit <= 0 {
		defaultDeposit = DefaultDepositAmount
	}
	return &DerivationPipeline{
		configs:  configs,
		catalog:  catalog,
		quotes:   quotes,
		notifier: notifier,
		tags:     tags,
		matchCfg: matchCfg,
		deposit:  defaultDeposit,
		log:      log,
	}
}

func (p *DerivationPipeline) Derive(ctx context.Context, formID string, sub entities.SubmissionContext) (entities.Quote, error) {
	correlationID := uuid.NewString()

	cfg, err := p.configs.GetByFormID(ctx, strings.TrimSpace(formID))
	if err != nil {
		return entities.Quote{}, err
	}
	if cfg.FormID == "" {
		return entities.Quote{}, ErrFormConfigNotFound
	}

	draft := p.ResolveFields(ctx, cfg, sub)
	logging.WithStage(p.log, "resolve", correlationID).Debug("fields resolved",
		slog.String("vehicle_name", draft.VehicleName),
		slog.String("product_id", draft.MatchedProductID))

	if err := p.MatchProduct(ctx, &draft); err != nil {
		return entities.Quote{}, err
	}
	logging.WithStage(p.log, "match", correlationID).Debug("product matched",
		slog.String("product_id", draft.MatchedProductID))

	if err := p.ComputePricing(ctx, &draft); err != nil {
		return entities.Quote{}, err
	}
	logging.WithStage(p.log, "price", correlationID).Debug("pricing computed",
		slog.Int("rental_days", draft.RentalDays),
		slog.Float64("rental_price", draft.CalculatedRentalPrice))

	quote, err := p.Persist(ctx, draft, sub)
	if err != nil {
		logging.WithStage(p.log, "persist", correlationID).Warn("quote rejected", slog.String("error", err.Error()))
		return entities.Quote{}, err
	}
	logging.WithStage(p.log, "persist", correlationID).Info("quote created",
		slog.String("quote_id", quote.ID))
	return quote, nil
}

// ResolveFields applies the form's field mapping to the submission,
// producing the draft. Missing data stays empty; validation happens at
// persist time.
func (p *DerivationPipeline) ResolveFields(ctx context.Context, cfg entities.FieldMappingConfig, sub entities.SubmissionContext) entities.DerivedQuoteDraft {
	draft := entities.DerivedQuoteDraft{FormType: cfg.FormType}

	draft.CustomerName = p.mappedValue(cfg, sub, entities.QuoteFieldCustomerName)
	draft.CustomerEmail = p.mappedValue(cfg, sub, entities.QuoteFieldCustomerEmail)
	draft.CustomerPhone = p.mappedValue(cfg, sub, entities.QuoteFieldCustomerPhone)
	draft.CustomerAge = p.mappedValue(cfg, sub, entities.QuoteFieldCustomerAge)
	draft.ContactPreference = p.mappedValue(cfg, sub, entities.QuoteFieldContactPreference)
	draft.RentalDates = p.mappedValue(cfg, sub, entities.QuoteFieldRentalDates)
	draft.AdditionalNotes = p.mappedValue(cfg, sub, entities.QuoteFieldAdditionalNotes)

	draft.VehicleName = p.dualModeValue(ctx, sub, cfg.VehicleSource, cfg.VehicleFieldID, cfg.VehicleSmartTag)

	rawProductID := p.dualModeValue(ctx, sub, cfg.ProductIDSource, cfg.ProductIDFieldID, cfg.ProductIDSmartTag)
	if id, err := strconv.Atoi(strings.TrimSpace(rawProductID)); err == nil && id > 0 {
		draft.MatchedProductID = strconv.Itoa(id)
	}

	p.applyLabelHeuristics(&draft, sub)

	return draft
}

func (p *DerivationPipeline) mappedValue(cfg entities.FieldMappingConfig, sub entities.SubmissionContext, quoteField string) string {
	fieldID, ok := cfg.QuoteFieldMappings[quoteField]
	if !ok || fieldID == "" {
		return ""
	}
	f, ok := sub.Field(fieldID)
	if !ok {
		return ""
	}
	return f.Value.Flatten()
}

func (p *DerivationPipeline) dualModeValue(ctx context.Context, sub entities.SubmissionContext, source entities.FieldSource, fieldID, tag string) string {
	// Exactly one mode is active; the inactive alternative is ignored even
	// when configured.
	switch source {
	case entities.FieldSourceSmartTag:
		if tag == "" {
			return ""
		}
		return p.tags.Resolve(ctx, tag, sub)
	case entities.FieldSourceField:
		if f, ok := sub.Field(fieldID); ok {
			return f.Value.Flatten()
		}
	}
	return ""
}

// applyLabelHeuristics captures age and contact-preference values from field
// labels when explicit mapping left them empty. Mapped values always win.
func (p *DerivationPipeline) applyLabelHeuristics(draft *entities.DerivedQuoteDraft, sub entities.SubmissionContext) {
	for _, f := range sub.Fields {
		label := strings.ToLower(f.Label)
		if draft.CustomerAge == "" && strings.Contains(label, "age") {
			draft.CustomerAge = f.Value.Flatten()
		}
		if draft.ContactPreference == "" &&
			(strings.Contains(label, "contact me by") ||
				strings.Contains(label, "contact preference") ||
				strings.Contains(label, "preferred contact")) {
			draft.ContactPreference = f.Value.Flatten()
		}
	}
}

// MatchProduct resolves the draft's product id: an explicit id is verified
// against the catalog, otherwise the vehicle name is matched exact-then-
// fuzzy. No match is not an error; the draft simply proceeds without
// pricing.
func (p *DerivationPipeline) MatchProduct(ctx context.Context, draft *entities.DerivedQuoteDraft) error {
	if draft.MatchedProductID != "" {
		exists, err := p.catalog.ProductExists(ctx, draft.MatchedProductID)
		if err != nil {
			return err
		}
		if !exists {
			appendDetail(draft, fmt.Sprintf("Submitted product id %s not found in catalog.", draft.MatchedProductID))
			draft.MatchedProductID = ""
			return nil
		}
		appendDetail(draft, fmt.Sprintf("Product id %s supplied by form mapping.", draft.MatchedProductID))
		return nil
	}

	if strings.TrimSpace(draft.VehicleName) == "" {
		return nil
	}

	matcher := matching.New(p.catalog, p.matchCfg)
	res, err := matcher.Match(ctx, draft.VehicleName)
	if err != nil {
		return err
	}
	if res.ProductID == "" {
		appendDetail(draft, fmt.Sprintf("No catalog match for %q.", draft.VehicleName))
		return nil
	}
	draft.MatchedProductID = res.ProductID
	appendDetail(draft, fmt.Sprintf("Matched %q to term %q via %s strategy (score %.0f).", draft.VehicleName, res.TermName, res.Strategy, res.Score))
	return nil
}

// ComputePricing fills the derived price fields from catalog attributes and
// the parsed rental period. It is skipped entirely without a product id or
// rental dates text.
func (p *DerivationPipeline) ComputePricing(ctx context.Context, draft *entities.DerivedQuoteDraft) error {
	if draft.MatchedProductID == "" || strings.TrimSpace(draft.RentalDates) == "" {
		return nil
	}

	rawPrice, err := p.catalog.GetAttribute(ctx, draft.MatchedProductID, entities.AttrPricePerDay)
	if err != nil {
		return err
	}
	draft.PricePerDay = parsing.ParseAmount(rawPrice)
	draft.RentalDays = parsing.ParseDays(draft.RentalDates)

	if draft.PricePerDay > 0 {
		draft.CalculatedRentalPrice = draft.PricePerDay * float64(draft.RentalDays)
		appendDetail(draft, fmt.Sprintf("Priced %d day(s) at %.2f/day = %.2f.", draft.RentalDays, draft.PricePerDay, draft.CalculatedRentalPrice))
	} else {
		appendDetail(draft, "Price per day not set in catalog; left for manual entry.")
	}

	miles, err := p.catalog.GetAttribute(ctx, draft.MatchedProductID, entities.AttrPrepaidMiles)
	if err != nil {
		return err
	}
	draft.CalculatedPrepaidMiles = miles

	if draft.DepositAmount == 0 {
		rawDeposit, err := p.catalog.GetAttribute(ctx, draft.MatchedProductID, entities.AttrDeposit)
		if err != nil {
			return err
		}
		if deposit := parsing.ParseAmount(rawDeposit); deposit > 0 {
			draft.DepositAmount = deposit
		} else {
			draft.DepositAmount = p.deposit
		}
	}

	return nil
}

// Persist validates the required fields, assigns identity and writes the
// quote. The admin notification is fire-and-forget: its failure is logged
// but never fails the submission.
func (p *DerivationPipeline) Persist(ctx context.Context, draft entities.DerivedQuoteDraft, sub entities.SubmissionContext) (entities.Quote, error) {
	if strings.TrimSpace(draft.CustomerName) == "" {
		return entities.Quote{}, ErrMissingCustomerName
	}
	if strings.TrimSpace(draft.CustomerEmail) == "" {
		return entities.Quote{}, ErrMissingCustomerEmail
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                uuid.NewString(),
		QuoteHash:         newQuoteHash(draft.CustomerEmail, now),
		CustomerName:      strings.TrimSpace(draft.CustomerName),
		CustomerEmail:     strings.TrimSpace(draft.CustomerEmail),
		CustomerPhone:     draft.CustomerPhone,
		CustomerAge:       draft.CustomerAge,
		ContactPreference: draft.ContactPreference,
		VehicleName:       draft.VehicleName,
		VehicleDetails:    draft.VehicleDetails,
		ProductID:         draft.MatchedProductID,
		RentalDates:       draft.RentalDates,
		RentalDays:        draft.RentalDays,
		RentalPrice:       draft.CalculatedRentalPrice,
		DepositAmount:     draft.DepositAmount,
		MileageAllowance:  draft.CalculatedPrepaidMiles,
		FormType:          draft.FormType,
		IPAddress:         sub.RemoteIP,
		UserAgent:         sub.UserAgent,
		ReferrerURL:       sub.ReferrerURL,
		Status:            entities.QuoteStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := p.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}

	if err := p.notifier.NotifyAdmins(ctx, created.ID, draft); err != nil {
		p.log.Warn("admin notification failed", slog.String("quote_id", created.ID), slog.String("error", err.Error()))
	}
	return created, nil
}

func appendDetail(draft *entities.DerivedQuoteDraft, line string) {
	if draft.VehicleDetails != "" {
		draft.VehicleDetails += "\n"
	}
	draft.VehicleDetails += line
}

// newQuoteHash builds the opaque public identifier from a nonce, the
// creation instant and the customer email. Uniqueness is additionally
// enforced by the store.
func newQuoteHash(email string, at time.Time) string {
	sum := sha256.Sum256([]byte(uuid.NewString() + strconv.FormatInt(at.UnixNano(), 10) + email))
	return hex.EncodeToString(sum[:])[:32]
}
