package shipping

// Address identifies a shipping origin or destination.
type Address struct {
	Name    string `json:"name"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Parcel describes the package being shipped. Dimensions are in inches,
// weight in pounds, matching the provider's default units.
type Parcel struct {
	Length float64 `json:"length,string"`
	Width  float64 `json:"width,string"`
	Height float64 `json:"height,string"`
	Weight float64 `json:"weight,string"`
}

// Rate is a single shipping option returned by the provider.
type Rate struct {
	ObjectID      string `json:"object_id"`
	Provider      string `json:"provider"`
	Service       string `json:"service"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	EstimatedDays int    `json:"estimated_days"`
	DurationTerms string `json:"duration_terms,omitempty"`
}

// Quote is the aggregated view of a rate request: all rates sorted by
// price, the recommended picks, and a by-provider grouping.
type Quote struct {
	Rates      []Rate            `json:"rates"`
	Cheapest   *Rate             `json:"cheapest,omitempty"`
	Fastest    *Rate             `json:"fastest,omitempty"`
	BestValue  *Rate             `json:"best_value,omitempty"`
	ByProvider map[string][]Rate `json:"by_provider,omitempty"`
}

// Config holds credentials for the Shippo client.
type Config struct {
	APIToken string
}
