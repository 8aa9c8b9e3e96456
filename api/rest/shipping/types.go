package shipping

import "codeberg.org/atelier/server/internal/shipping"

// RatesRequest asks for carrier rates to a destination. The parcel is
// optional; the gallery's standard artwork crate is assumed when absent.
type RatesRequest struct {
	Address shipping.Address `json:"address"`
	Parcel  *shipping.Parcel `json:"parcel"`
}

// standard crate for a framed piece
var defaultParcel = shipping.Parcel{
	Length: 30,
	Width:  24,
	Height: 4,
	Weight: 8,
}
