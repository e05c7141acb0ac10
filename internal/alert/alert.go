package alert

import (
	"fmt"

	"github.com/cognisync/go-engine/internal/signal"
)

// #region types

// Kind identifies a discrete behavioral event.
type Kind string

const (
	KindEngagementDropping Kind = "engagement_dropping"
	KindStressSpiking      Kind = "stress_spiking"
	KindVeryLowEngagement  Kind = "very_low_engagement"
	KindHighStress         Kind = "high_stress"
	KindAttentionLost      Kind = "attention_lost"

	// KindInconsistency is declared for the selector's crisis dispatch but is
	// never emitted by Detect. The trend branch is the only producer.
	KindInconsistency Kind = "inconsistency"
)

// Alert is one detected behavioral event with a human-readable reason.
type Alert struct {
	Kind   Kind   `json:"kind"`
	Reason string `json:"reason"`
}

// #endregion types

// #region thresholds

const (
	// Drop below the recent engagement average that triggers a dropping alert.
	engagementDropDelta float32 = 20
	// Rise above the recent stress average that triggers a spiking alert.
	stressSpikeDelta float32 = 20
	// Absolute floor below which engagement is flagged outright.
	lowEngagementFloor float32 = 30
	// Absolute ceiling above which stress is flagged outright.
	highStressCeiling float32 = 75
	// How many trailing history entries feed the rolling averages.
	trendWindow = 3
)

// #endregion thresholds

// #region detect

// Detect compares the current snapshot against recent history and returns
// alerts in a fixed order: engagement drop, stress spike, low engagement,
// high stress, attention lost. With fewer than two history entries no trend
// exists yet and nothing fires, not even the absolute-threshold checks.
func Detect(current signal.Snapshot, history []signal.Snapshot) []Alert {
	if len(history) < 2 {
		return nil
	}

	window := history
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}

	var alerts []Alert

	avgEng := average(window, func(s signal.Snapshot) float32 { return s.Engagement })
	if current.Engagement < avgEng-engagementDropDelta {
		alerts = append(alerts, Alert{
			Kind:   KindEngagementDropping,
			Reason: fmt.Sprintf("engagement %.1f fell more than %.0f below recent average %.1f", current.Engagement, engagementDropDelta, avgEng),
		})
	}

	avgStress := average(window, func(s signal.Snapshot) float32 { return s.Stress })
	if current.Stress > avgStress+stressSpikeDelta {
		alerts = append(alerts, Alert{
			Kind:   KindStressSpiking,
			Reason: fmt.Sprintf("stress %.1f rose more than %.0f above recent average %.1f", current.Stress, stressSpikeDelta, avgStress),
		})
	}

	if current.Engagement < lowEngagementFloor {
		alerts = append(alerts, Alert{
			Kind:   KindVeryLowEngagement,
			Reason: fmt.Sprintf("engagement %.1f below floor %.0f", current.Engagement, lowEngagementFloor),
		})
	}

	if current.Stress > highStressCeiling {
		alerts = append(alerts, Alert{
			Kind:   KindHighStress,
			Reason: fmt.Sprintf("stress %.1f above ceiling %.0f", current.Stress, highStressCeiling),
		})
	}

	if current.Attention == signal.AttentionLow {
		alerts = append(alerts, Alert{
			Kind:   KindAttentionLost,
			Reason: "attention low, subject is disengaged",
		})
	}

	return alerts
}

func average(window []signal.Snapshot, field func(signal.Snapshot) float32) float32 {
	var sum float32
	for _, s := range window {
		sum += field(s)
	}
	return sum / float32(len(window))
}

// #endregion detect
