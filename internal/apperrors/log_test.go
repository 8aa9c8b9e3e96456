package apperrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityRouting(t *testing.T) {
	warns := []Kind{
		KindValidation, KindNotFound, KindAuthentication,
		KindAuthorization, KindRateLimit,
	}
	for _, kind := range warns {
		assert.True(t, warnKinds[kind], "%s should log as a warning", kind)
	}

	errs := []Kind{
		KindPaymentProvider, KindShippingProvider, KindStorage, KindInternal,
	}
	for _, kind := range errs {
		assert.False(t, warnKinds[kind], "%s should log as an error", kind)
	}
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Stripe error", KindPaymentProvider.Label())
	assert.Equal(t, "Database error", KindStorage.Label())
	assert.Equal(t, "Internal server error", Kind("SOMETHING_ELSE").Label())
}
