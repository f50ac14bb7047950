package ai

import "strings"

// Normalize strips the formatting artifacts Gemini tends to wrap JSON payloads
// in, even when told not to: markdown code fences (language-tagged or bare) and
// surrounding whitespace. It is a heuristic cleanup, not a parser; whatever
// survives is handed to json.Unmarshal, which is where malformed output fails.
// Already-clean JSON passes through unchanged.
func Normalize(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
