package usecase

import (
	"fmt"
	"strings"
)

// fallback is the coarse keyword-bucket classifier layered under the rule
// scan. Deterministic: same input, same bucket, same template.
func (r *implResponder) fallback(input string) string {
	lower := strings.ToLower(input)

	switch {
	case containsAny(lower, questionKeywords):
		return fmt.Sprintf(fallbackQuestionTemplate, input)
	case containsAny(lower, technicalKeywords):
		return fmt.Sprintf(fallbackTechnicalTemplate, input)
	case containsAny(lower, actionKeywords):
		return fmt.Sprintf(fallbackActionTemplate, input)
	default:
		return fmt.Sprintf(fallbackGeneralTemplate, input)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
