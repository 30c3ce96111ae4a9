package availability

import (
	"context"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/schema"
	"github.com/rs/zerolog"
)

// Placeholder identifiers until the inventory integration supplies real
// hotel codes.
const (
	responseId        = "A#1"
	hotelCodeSupplier = "39971881"
)

// Service runs the validation-and-pricing pipeline over a parsed
// availability document. Validation is fail-fast: the first violated rule
// aborts the run and nothing partial is returned.
type Service struct {
	rules Rules
	now   func() time.Time
}

func New(rules Rules) *Service {
	return NewWithClock(rules, time.Now)
}

// NewWithClock pins "today" for the stay-date checks. Tests use it to keep
// the lead-time rule deterministic.
func NewWithClock(rules Rules, now func() time.Time) *Service {
	return &Service{
		rules: rules,
		now:   now,
	}
}

// ValidatedRequest holds the resolved scalar fields after validation.
// Every field is either allow-listed document text or the documented
// default; nothing here is unvalidated.
type ValidatedRequest struct {
	Language     string
	OptionsQuota int
	Destinations []string
	Credentials  Credentials
	StartDate    time.Time
	EndDate      time.Time
	Currency     string
	Nationality  string
	Market       string
}

// Validate resolves the scalar fields of the document in their fixed order:
// language, optionsQuota, credentials, search type, stay dates, currency,
// nationality, market. The first violation wins; later fields are never
// looked at.
func (s *Service) Validate(doc *schema.AvailabilityDocument) (ValidatedRequest, error) {
	validated := ValidatedRequest{}

	language, err := validateValue(doc.Source.LanguageCode, s.rules.AllowedLanguages, s.rules.DefaultLanguage, "language")
	if err != nil {
		return validated, err
	}

	quota, err := s.validateOptionsQuota(doc.OptionsQuota)
	if err != nil {
		return validated, err
	}

	credentials, err := validateCredentials(doc.Configuration.Parameters.Parameter)
	if err != nil {
		return validated, err
	}

	destinations := resolveDestinations(doc.SearchType)

	startDate, endDate, err := s.validateStayDates(doc.StartDate, doc.EndDate)
	if err != nil {
		return validated, err
	}

	currency, err := validateValue(doc.Currency, s.rules.AllowedCurrencies, s.rules.DefaultCurrency, "currency")
	if err != nil {
		return validated, err
	}

	nationality, err := validateValue(doc.Nationality, s.rules.AllowedNationalities, s.rules.DefaultNationality, "nationality")
	if err != nil {
		return validated, err
	}

	market, err := validateValue(doc.Markets, s.rules.AllowedMarkets, s.rules.DefaultMarket, "market")
	if err != nil {
		return validated, err
	}

	validated.Language = language
	validated.OptionsQuota = quota
	validated.Credentials = credentials
	validated.Destinations = destinations
	validated.StartDate = startDate
	validated.EndDate = endDate
	validated.Currency = currency
	validated.Nationality = nationality
	validated.Market = market

	return validated, nil
}

// GetAvailability validates the document and prices the first room group
// that passes occupancy checks. Later groups are neither validated nor
// priced in the same run; callers wanting quotes for every room resubmit
// per room. An oversized group count is logged, not raised.
func (s *Service) GetAvailability(ctx context.Context, doc *schema.AvailabilityDocument, logger *zerolog.Logger) (schema.AvailabilityResponse, error) {
	if err := ctx.Err(); err != nil {
		return schema.AvailabilityResponse{}, err
	}

	validated, err := s.Validate(doc)
	if err != nil {
		return schema.AvailabilityResponse{}, err
	}

	if len(doc.Rooms) > s.rules.MaxRooms {
		logger.Warn().
			Int("rooms", len(doc.Rooms)).
			Int("maxRooms", s.rules.MaxRooms).
			Msg("Requested number of rooms exceeds max allowed rooms")
	}

	for _, room := range doc.Rooms {
		if _, err := s.validateOccupancy(room); err != nil {
			return schema.AvailabilityResponse{}, err
		}

		price, err := s.priceQuote(validated.Currency)
		if err != nil {
			return schema.AvailabilityResponse{}, err
		}

		return schema.AvailabilityResponse{
			Id:                responseId,
			HotelCodeSupplier: hotelCodeSupplier,
			Market:            validated.Market,
			Price:             price,
		}, nil
	}

	return schema.AvailabilityResponse{}, &RuleError{Field: "Paxes", Reason: "no rooms requested"}
}
