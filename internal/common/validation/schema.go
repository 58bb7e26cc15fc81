// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// currentWeatherSchema is the minimum shape the relay needs from a 2xx
// provider response. The non-empty "weather" requirement is the guard
// against the provider's occasionally empty condition list.
const currentWeatherSchema = `{
	"type": "object",
	"required": ["name", "sys", "main", "weather"],
	"properties": {
		"name": {"type": "string"},
		"sys": {
			"type": "object",
			"required": ["country"],
			"properties": {
				"country": {"type": "string"}
			}
		},
		"main": {
			"type": "object",
			"required": ["temp", "feels_like", "humidity"],
			"properties": {
				"temp": {"type": "number"},
				"feels_like": {"type": "number"},
				"humidity": {"type": "number"}
			}
		},
		"weather": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["description", "icon"],
				"properties": {
					"description": {"type": "string"},
					"icon": {"type": "string"}
				}
			}
		}
	}
}`

var compiledCurrentWeather = mustCompile(currentWeatherSchema)

func mustCompile(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return compiled
}

// ValidateCurrentWeather checks a provider body against the minimum shape.
// A non-nil error lists every violated field for the diagnostic log.
func ValidateCurrentWeather(body []byte) error {
	result, err := compiledCurrentWeather.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
	}
	return fmt.Errorf("response shape invalid: %s", strings.Join(violations, "; "))
}
