package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	quote := Aggregate(nil)

	assert.Empty(t, quote.Rates)
	assert.Nil(t, quote.Cheapest)
	assert.Nil(t, quote.Fastest)
	assert.Nil(t, quote.BestValue)
}

func TestAggregate_SortsByPrice(t *testing.T) {
	quote := Aggregate([]Rate{
		{ObjectID: "a", Provider: "UPS", AmountCents: 2450, EstimatedDays: 2},
		{ObjectID: "b", Provider: "USPS", AmountCents: 899, EstimatedDays: 5},
		{ObjectID: "c", Provider: "FedEx", AmountCents: 1799, EstimatedDays: 3},
	})

	require.Len(t, quote.Rates, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{
		quote.Rates[0].ObjectID, quote.Rates[1].ObjectID, quote.Rates[2].ObjectID,
	})

	require.NotNil(t, quote.Cheapest)
	assert.Equal(t, "b", quote.Cheapest.ObjectID)
}

func TestAggregate_PriceTieBreaksOnSpeed(t *testing.T) {
	quote := Aggregate([]Rate{
		{ObjectID: "slow", Provider: "USPS", AmountCents: 1000, EstimatedDays: 7},
		{ObjectID: "fast", Provider: "UPS", AmountCents: 1000, EstimatedDays: 2},
	})

	assert.Equal(t, "fast", quote.Rates[0].ObjectID)
	assert.Equal(t, "fast", quote.Cheapest.ObjectID)
}

func TestAggregate_Fastest(t *testing.T) {
	quote := Aggregate([]Rate{
		{ObjectID: "ground", Provider: "USPS", AmountCents: 899, EstimatedDays: 5},
		{ObjectID: "express", Provider: "FedEx", AmountCents: 4200, EstimatedDays: 1},
		{ObjectID: "unknown", Provider: "UPS", AmountCents: 500, EstimatedDays: 0},
	})

	require.NotNil(t, quote.Fastest)
	assert.Equal(t, "express", quote.Fastest.ObjectID)
}

func TestAggregate_FastestIgnoresMissingEstimates(t *testing.T) {
	// a rate without an estimate never wins the fastest slot when a
	// real estimate exists
	quote := Aggregate([]Rate{
		{ObjectID: "unknown", Provider: "UPS", AmountCents: 500, EstimatedDays: 0},
		{ObjectID: "known", Provider: "USPS", AmountCents: 899, EstimatedDays: 5},
	})

	assert.Equal(t, "known", quote.Fastest.ObjectID)
}

func TestAggregate_BestValue(t *testing.T) {
	quote := Aggregate([]Rate{
		{ObjectID: "cheap-slow", Provider: "USPS", AmountCents: 800, EstimatedDays: 8}, // 6400
		{ObjectID: "balanced", Provider: "UPS", AmountCents: 1500, EstimatedDays: 3},   // 4500
		{ObjectID: "pricey", Provider: "FedEx", AmountCents: 4200, EstimatedDays: 1},   // 4200
	})

	require.NotNil(t, quote.BestValue)
	assert.Equal(t, "pricey", quote.BestValue.ObjectID)
}

func TestAggregate_BestValueTreatsMissingEstimateAsSlowest(t *testing.T) {
	quote := Aggregate([]Rate{
		{ObjectID: "unknown", Provider: "UPS", AmountCents: 600, EstimatedDays: 0}, // scored at 6 days: 3600
		{ObjectID: "known", Provider: "USPS", AmountCents: 1000, EstimatedDays: 2}, // 2000
		{ObjectID: "slow", Provider: "FedEx", AmountCents: 1200, EstimatedDays: 6}, // 7200
	})

	assert.Equal(t, "known", quote.BestValue.ObjectID)
}

func TestAggregate_ByProvider(t *testing.T) {
	quote := Aggregate([]Rate{
		{ObjectID: "a", Provider: "USPS", AmountCents: 899, EstimatedDays: 5},
		{ObjectID: "b", Provider: "USPS", AmountCents: 2499, EstimatedDays: 2},
		{ObjectID: "c", Provider: "UPS", AmountCents: 1799, EstimatedDays: 3},
	})

	require.Len(t, quote.ByProvider, 2)
	assert.Len(t, quote.ByProvider["USPS"], 2)
	assert.Len(t, quote.ByProvider["UPS"], 1)
	// per-provider lists keep the overall price order
	assert.Equal(t, "a", quote.ByProvider["USPS"][0].ObjectID)
}
