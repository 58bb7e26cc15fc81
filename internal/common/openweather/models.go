// internal/common/openweather/models.go
package openweather

// CurrentConditions is the subset of the provider's current-weather response
// the relay consumes.
type CurrentConditions struct {
	Name    string      `json:"name"`
	Sys     Sys         `json:"sys"`
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
}

type Sys struct {
	Country string `json:"country"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  float64 `json:"humidity"`
}

type Condition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// apiError is the provider's error body. The "cod" field is serialized as a
// string or a number depending on the endpoint, so the client keys off the
// HTTP status instead and only reads the message.
type apiError struct {
	Message string `json:"message"`
}
