package booking

// ServiceOption is one bookable service variant with its hourly rate.
type ServiceOption struct {
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

// serviceCatalogue lists the selectable service variants. The default
// selection is the first entry.
var serviceCatalogue = []ServiceOption{
	{Key: "pipe-repair", Name: "Pipe Repair & Replacement", Rate: 50},
	{Key: "leak-detection", Name: "Leak Detection & Fixing", Rate: 60},
	{Key: "drain-cleaning", Name: "Drain Cleaning", Rate: 45},
	{Key: "water-heater", Name: "Water Heater Installation", Rate: 80},
}

// DefaultServiceKey is the pre-selected service variant.
const DefaultServiceKey = "pipe-repair"

// ServiceCatalogue returns the selectable service variants.
func ServiceCatalogue() []ServiceOption {
	out := make([]ServiceOption, len(serviceCatalogue))
	copy(out, serviceCatalogue)
	return out
}

// LookupService resolves a service key to its catalogue entry.
func LookupService(key string) (ServiceOption, bool) {
	for _, opt := range serviceCatalogue {
		if opt.Key == key {
			return opt, true
		}
	}
	return ServiceOption{}, false
}

// EstimateRange returns the displayed price estimate for a service: the
// hourly rate up to twice the rate. Job duration is unknown up front, so this
// is deliberately a range rather than a fixed total.
func EstimateRange(rate float64) (float64, float64) {
	return rate, rate * 2
}
