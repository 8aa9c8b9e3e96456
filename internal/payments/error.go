package payments

import "fmt"

// provider error sub-types. The classifier dispatches on these tags, so
// they are part of the package contract.
const (
	ErrTypeCard           = "StripeCardError"
	ErrTypeRateLimit      = "StripeRateLimitError"
	ErrTypeInvalidRequest = "StripeInvalidRequestError"
	ErrTypeAPI            = "StripeAPIError"
	ErrTypeConnection     = "StripeConnectionError"
	ErrTypeAuthentication = "StripeAuthenticationError"
)

// Error is a failure surfaced by the payment provider. Type is always one
// of the ErrType constants; the remaining fields are present when the
// provider supplied them.
type Error struct {
	Type        string
	Code        string
	Param       string
	DeclineCode string
	Message     string
	StatusCode  int
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s): %s", e.Type, e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// maps the provider's wire-level error type to our sub-type tag
func errTypeFromWire(wireType string) string {
	switch wireType {
	case "card_error":
		return ErrTypeCard
	case "rate_limit_error":
		return ErrTypeRateLimit
	case "invalid_request_error":
		return ErrTypeInvalidRequest
	case "authentication_error":
		return ErrTypeAuthentication
	case "api_error":
		return ErrTypeAPI
	default:
		return ErrTypeAPI
	}
}
