package cart

import (
	"strings"
	"testing"

	"codeberg.org/atelier/server/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrency_DefaultsToUSD(t *testing.T) {
	currency, err := normalizeCurrency("")

	require.NoError(t, err)
	assert.Equal(t, "usd", currency)
}

func TestNormalizeCurrency_AcceptsSupportedAndLowercases(t *testing.T) {
	for _, requested := range []string{"eur", "EUR", "gbp", "jpy"} {
		currency, err := normalizeCurrency(requested)

		require.NoError(t, err, "currency %q", requested)
		assert.Equal(t, strings.ToLower(requested), currency)
	}
}

func TestNormalizeCurrency_RejectsUnsupported(t *testing.T) {
	_, err := normalizeCurrency("btc")

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CURRENCY", domainErr.Code)
}
