package availability

import (
	"strconv"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/schema"
	"bitbucket.org/crgw/availability-hub/internal/tools/converting"
)

// StayDateFormat is the day-first calendar layout of StartDate and EndDate.
const StayDateFormat = "02/01/2006"

// Credentials are the resolved caller parameters from the Configuration
// node.
type Credentials struct {
	Username  string
	Password  string
	CompanyID int
}

// validateValue resolves one allow-listed field. An absent node takes the
// default; present-but-unlisted text is a rule violation. The raw text is
// compared verbatim, no trimming.
func validateValue(node *schema.TextNode, allowed []string, defaultValue string, field string) (string, error) {
	if node != nil {
		for _, value := range allowed {
			if node.Value == value {
				return node.Value, nil
			}
		}

		return "", &RuleError{Field: field, Reason: "invalid " + field}
	}

	return defaultValue, nil
}

func (s *Service) validateOptionsQuota(node *schema.TextNode) (int, error) {
	raw := converting.Unwrap(node).Value
	if raw == "" {
		return s.rules.DefaultOptionsQuota, nil
	}

	quota, ok := parseDigits(raw)
	if !ok || quota > s.rules.MaxOptionsQuota {
		return 0, &RuleError{Field: "optionsQuota", Reason: "optionsQuota out of range"}
	}

	return quota, nil
}

// validateCredentials checks the Parameter attributes in a fixed order:
// password, username, company id presence, company id format. The first
// violation wins.
func validateCredentials(parameter schema.Parameter) (Credentials, error) {
	if parameter.Password == "" {
		return Credentials{}, &RuleError{Field: "password", Reason: "missing password"}
	}

	if parameter.Username == "" {
		return Credentials{}, &RuleError{Field: "username", Reason: "missing username"}
	}

	if parameter.CompanyID == "" {
		return Credentials{}, &RuleError{Field: "CompanyID", Reason: "company id missing"}
	}

	companyId, ok := parseDigits(parameter.CompanyID)
	if !ok {
		return Credentials{}, &RuleError{Field: "CompanyID", Reason: "company id must be numeric"}
	}

	return Credentials{
		Username:  parameter.Username,
		Password:  parameter.Password,
		CompanyID: companyId,
	}, nil
}

// resolveDestinations maps SearchType onto the destination container: nil
// for a single search, an empty non-nil list for "Multiple". Unrecognized
// values fall back to single without raising; the upstream contract is
// permissive here.
func resolveDestinations(node *schema.TextNode) []string {
	if converting.Unwrap(node).Value == "Multiple" {
		return []string{}
	}

	return nil
}

// validateStayDates enforces the booking window: at least MinLeadDays
// between today and the start, at least MinStayDays between start and end.
// "today" comes from the injected clock.
func (s *Service) validateStayDates(startNode, endNode *schema.TextNode) (time.Time, time.Time, error) {
	start, err := parseStayDate(startNode, "StartDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := parseStayDate(endNode, "EndDate")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if daysBetween(today, start) < s.rules.MinLeadDays {
		return time.Time{}, time.Time{}, &RuleError{Field: "StartDate", Reason: "start date too soon"}
	}

	if daysBetween(start, end) < s.rules.MinStayDays {
		return time.Time{}, time.Time{}, &RuleError{Field: "EndDate", Reason: "trip too short"}
	}

	return start, end, nil
}

func parseStayDate(node *schema.TextNode, field string) (time.Time, error) {
	if node == nil {
		return time.Time{}, &RuleError{Field: field, Reason: "missing " + field}
	}

	date, err := time.Parse(StayDateFormat, node.Value)
	if err != nil {
		return time.Time{}, &RuleError{Field: field, Reason: "invalid " + field}
	}

	return date, nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// parseDigits accepts unsigned all-digit strings only. Signed input does
// not qualify, matching the upstream digit check.
func parseDigits(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return number, true
}
