// internal/handlers/weather-lookup/models.go
package weatherlookup

// WeatherSummary is the reduced client-facing payload: a rename/copy of the
// provider's main measurement block and first condition entry.
type WeatherSummary struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feelsLike"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`
}
