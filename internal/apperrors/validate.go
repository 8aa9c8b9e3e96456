package apperrors

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
)

// simple local@domain.tld shape; full RFC 5322 compliance is not a goal
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// currencies the storefront can charge in
var supportedCurrencies = map[string]bool{
	"usd": true,
	"eur": true,
	"gbp": true,
	"cad": true,
	"aud": true,
	"jpy": true,
}

// ValidateRequired checks that every named field is present and non-empty.
// All missing fields are reported in a single error, not just the first.
func ValidateRequired(fields map[string]any, required []string) error {
	var missing []string

	for _, name := range required {
		value, ok := fields[name]
		if !ok || value == nil {
			missing = append(missing, name)
			continue
		}

		if s, isString := value.(string); isString && s == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return NewDomainError(
		KindValidation,
		"Missing required fields: "+strings.Join(missing, ", "),
		http.StatusBadRequest,
	).WithCode("MISSING_REQUIRED_FIELDS").WithDetails(map[string]any{
		"missingFields": missing,
	})
}

// ValidateEmail checks the value has a plausible email shape.
func ValidateEmail(value string) error {
	if emailRegex.MatchString(value) {
		return nil
	}

	return NewDomainError(
		KindValidation,
		"Invalid email address format",
		http.StatusBadRequest,
	).WithCode("INVALID_EMAIL_FORMAT")
}

// ValidateAmount checks the value is numeric and at least min.
func ValidateAmount(value any, min float64) error {
	amount, ok := toFloat(value)

	if !ok || amount < min {
		return NewDomainError(
			KindValidation,
			"Amount must be a number greater than or equal to the minimum",
			http.StatusBadRequest,
		).WithCode("INVALID_AMOUNT").WithDetails(map[string]any{
			"min": min,
		})
	}

	return nil
}

// ValidateCurrency checks the lower-cased value is a supported currency.
func ValidateCurrency(value string) error {
	if supportedCurrencies[strings.ToLower(value)] {
		return nil
	}

	return NewDomainError(
		KindValidation,
		"Unsupported currency: "+value,
		http.StatusBadRequest,
	).WithCode("INVALID_CURRENCY")
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
