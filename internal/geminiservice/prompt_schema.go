package geminiservice

import "slices"

// GeminiSchema describes the JSON the model must return ("Controlled
// Generation"). Types use Gemini's upper-case names: OBJECT, ARRAY, STRING,
// NUMBER, INTEGER, BOOLEAN.
type GeminiSchema struct {
	Type string `json:"type"`

	// Format specifies data format, e.g. "enum" or "date".
	Format string `json:"format,omitempty"`

	// Description explains the field's purpose to the model.
	Description string `json:"description,omitempty"`

	// Properties maps field names to their child schemas (OBJECT only).
	Properties map[string]*GeminiSchema `json:"properties,omitempty"`

	// Items is the element schema of an ARRAY.
	Items *GeminiSchema `json:"items,omitempty"`

	Required []string `json:"required,omitempty"`
	Enum     []string `json:"enum,omitempty"`
	Nullable bool     `json:"nullable,omitempty"`
}

// String is a shorthand for a described STRING field.
func String(description string) *GeminiSchema {
	return &GeminiSchema{Type: "STRING", Description: description}
}

// Number is a shorthand for a described NUMBER field.
func Number(description string) *GeminiSchema {
	return &GeminiSchema{Type: "NUMBER", Description: description}
}

// Enum is a STRING restricted to values.
func Enum(description string, values ...string) *GeminiSchema {
	return &GeminiSchema{Type: "STRING", Format: "enum", Description: description, Enum: values}
}

// ArrayOf wraps items in an ARRAY.
func ArrayOf(description string, items *GeminiSchema) *GeminiSchema {
	return &GeminiSchema{Type: "ARRAY", Description: description, Items: items}
}

// Object builds an OBJECT whose properties are all required.
func Object(properties map[string]*GeminiSchema) *GeminiSchema {
	required := make([]string, 0, len(properties))
	for name, p := range properties {
		if !p.Nullable {
			required = append(required, name)
		}
	}
	slices.Sort(required)
	return &GeminiSchema{Type: "OBJECT", Properties: properties, Required: required}
}

