package config

import "github.com/ledgerlight/runway/internal/engine"

// EffectiveThresholds merges configured overrides over the engine defaults.
func EffectiveThresholds(cfg Config) engine.Thresholds {
	th := engine.DefaultThresholds
	if v := cfg.Thresholds.HealthyMonths; v != nil {
		th.HealthyMonths = *v
	}
	if v := cfg.Thresholds.WatchMonths; v != nil {
		th.WatchMonths = *v
	}
	if v := cfg.Thresholds.MediumOverdue; v != nil {
		th.MediumOverdue = *v
	}
	return th
}
