package shipping

import "fmt"

// Error is a failure surfaced by the shipping-rate provider.
type Error struct {
	Status  int // HTTP status returned by the provider, 0 for transport failures
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("shipping provider error (status %d): %s", e.Status, e.Message)
	}

	return fmt.Sprintf("shipping provider error: %s", e.Message)
}
