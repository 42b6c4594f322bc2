package models

// Price is an on-demand hourly rate. Found is false when the Pricing API
// returned no usable document.
type Price struct {
	USDPerHour      float64
	PublicationDate string
	Found           bool
}
