package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes markdown code-fence markers a model may wrap around
// JSON output and trims the remainder.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// DecodeModelJSON parses completion output into target: strip known fence
// markers, locate the outermost JSON value, unmarshal. Anything that still
// fails to parse is ErrMalformedResponse.
func DecodeModelJSON(text string, target any) error {
	clean := extractJSON(StripFences(text))

	if err := json.Unmarshal([]byte(clean), target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

// extractJSON slices the text down to its outermost JSON object or array,
// dropping any prose the model added around it.
func extractJSON(text string) string {
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	switch {
	case startArr != -1 && endArr > startArr && (startObj == -1 || startArr < startObj):
		return text[startArr : endArr+1]
	case startObj != -1 && endObj > startObj:
		return text[startObj : endObj+1]
	}

	return text
}
