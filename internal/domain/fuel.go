package domain

// FuelType names a retail fuel grade as selected by the caller.
type FuelType string

const (
	FuelRegular  FuelType = "Regular"
	FuelMidgrade FuelType = "Midgrade"
	FuelPremium  FuelType = "Premium"
	FuelDiesel   FuelType = "Diesel"
	// FuelAll is the aggregate "all grades" series, accepted only by the
	// ad hoc fuel-price endpoint.
	FuelAll FuelType = "All"
)

// NationalArea is the EIA duoarea code for the U.S. national average series,
// used as the pricing fallback when no state-level data point exists.
const NationalArea = "NUS"

// fuelProducts maps fuel grades to EIA product facet codes.
var fuelProducts = map[FuelType]string{
	FuelRegular:  "EPMR",
	FuelMidgrade: "EPMM",
	FuelPremium:  "EPMP",
	FuelDiesel:   "EPD2D",
	FuelAll:      "EPM0",
}

// ProductCode returns the EIA product code for a fuel grade.
// The second return is false for unknown grades.
func (f FuelType) ProductCode() (string, bool) {
	code, ok := fuelProducts[f]
	return code, ok
}

// FuelPriceQuote is a resolved per-gallon price together with the region
// whose series actually supplied it and the series period it belongs to.
type FuelPriceQuote struct {
	PricePerGallon float64
	// Area is the duoarea code the value came from. Equal to NationalArea
	// when the national average was used, either directly or as a fallback.
	Area   string
	Period string
}

// National reports whether the quote came from the national average series.
func (q FuelPriceQuote) National() bool { return q.Area == NationalArea }
