package extract

import (
	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/models"
	"payment-intent-parser/internal/parser/patterns"
)

// UrgencyLevel returns "high" when a high-urgency keyword is present,
// otherwise the configured default urgency.
func UrgencyLevel(input string) models.Urgency {
	if patterns.HighUrgencyKeywords.MatchString(input) {
		return models.UrgencyHigh
	}
	if cfg, err := config.Get(); err == nil {
		switch models.Urgency(cfg.Parser.DefaultUrgency) {
		case models.UrgencyHigh:
			return models.UrgencyHigh
		case models.UrgencyStandard:
			return models.UrgencyStandard
		}
	}
	return models.UrgencyStandard
}
