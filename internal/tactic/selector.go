package tactic

import (
	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region types

// Branch identifies which stage of the selection cascade produced the advice.
type Branch string

const (
	BranchAlert     Branch = "alert"
	BranchTrend     Branch = "trend"
	BranchOverride  Branch = "override"
	BranchExact     Branch = "exact"
	BranchFuzzy     Branch = "fuzzy"
	BranchFlowState Branch = "flow_state"
	BranchDefault   Branch = "default"
)

// Selection is one tactical recommendation with its provenance.
type Selection struct {
	Advice  string `json:"advice"`
	Branch  Branch `json:"branch"`
	Key     string `json:"key,omitempty"`
	Variant int    `json:"variant"`
}

// #endregion types

// #region thresholds

const (
	// Engagement drop across three frames that routes to the crisis sequence.
	trendEngagementDrop float32 = -15
	// Stress rise across three frames that routes to the crisis sequence.
	trendStressRise float32 = 15
	// Distinct emotions over four frames that reads as behavioral volatility.
	trendDistinctEmotions = 3

	// Hard override bounds, checked against the raw scores rather than zones.
	overrideStressAbove     float32 = 65
	overrideEngagementBelow float32 = 30

	// Flow-state window bounds.
	flowEngagementAbove float32 = 70
	flowStressBelow     float32 = 35
)

// FlowStateMessage is the fixed advice for the optimal-state shortcut.
const FlowStateMessage = "You're in the 'flow state' window — emotional safety and cognitive engagement " +
	"are both high. This is your highest-leverage moment. Make your most important " +
	"ask or deliver your key message NOW."

// #endregion thresholds

// #region selector

// Selector runs the priority cascade over a tactic catalog. It owns the
// rotation tracker and the generic-default cursor, so each session gets its
// own Selector and sessions never perturb each other's escalation.
type Selector struct {
	catalog    *catalog.Catalog
	rotation   *Tracker
	defaultIdx int
}

// NewSelector returns a selector over the given catalog with fresh rotation
// state.
func NewSelector(cat *catalog.Catalog) *Selector {
	return &Selector{catalog: cat, rotation: NewTracker()}
}

// Select picks one tactic for the current snapshot. The cascade is, in
// priority order: alert dispatch, trend detection, hard overrides, exact
// catalog lookup, fuzzy relaxation, flow-state shortcut, rotating generic
// default. It is total: some branch always produces advice.
func (s *Selector) Select(current signal.Snapshot, history []signal.Snapshot, alerts []alert.Alert) Selection {
	stressZone := signal.ZoneOf(current.Stress)
	engagementZone := signal.ZoneOf(current.Engagement)

	// 1. Alert dispatch.
	if tag, ok := crisisForAlerts(alerts); ok {
		if sel, ok := s.tryCrisis(tag, BranchAlert); ok {
			return sel
		}
	}

	// 2. Cross-frame trend detection.
	if len(history) >= 3 {
		base := history[len(history)-3]
		if current.Engagement-base.Engagement < trendEngagementDrop {
			if sel, ok := s.tryCrisis(catalog.CrisisEngagementDrop, BranchTrend); ok {
				return sel
			}
		}
		if current.Stress-base.Stress > trendStressRise {
			if sel, ok := s.tryCrisis(catalog.CrisisStressSpike, BranchTrend); ok {
				return sel
			}
		}
		if distinctEmotions(history[len(history)-3:], current.Emotion) >= trendDistinctEmotions {
			if sel, ok := s.tryCrisis(catalog.CrisisInconsistency, BranchTrend); ok {
				return sel
			}
		}
	}

	// 3. Hard overrides.
	if current.Attention == signal.AttentionLow {
		k := catalog.Key{Emotion: current.Emotion, Attention: signal.AttentionLow, StressZone: stressZone, EngagementZone: engagementZone}
		if sel, ok := s.tryKey(k, BranchOverride); ok {
			return sel
		}
		if sel, ok := s.tryCrisis(catalog.CrisisAttentionLost, BranchOverride); ok {
			return sel
		}
	}
	if current.Stress > overrideStressAbove {
		k := catalog.Key{Emotion: current.Emotion, Attention: current.Attention, StressZone: signal.ZoneHigh, EngagementZone: engagementZone}
		if sel, ok := s.tryKey(k, BranchOverride); ok {
			return sel
		}
		if sel, ok := s.tryCrisis(catalog.CrisisStressSpike, BranchOverride); ok {
			return sel
		}
	}
	if current.Engagement < overrideEngagementBelow {
		if sel, ok := s.tryCrisis(catalog.CrisisEngagementDrop, BranchOverride); ok {
			return sel
		}
	}

	// 4. Exact lookup.
	exact := catalog.Key{Emotion: current.Emotion, Attention: current.Attention, StressZone: stressZone, EngagementZone: engagementZone}
	if sel, ok := s.tryKey(exact, BranchExact); ok {
		return sel
	}

	// 5. Fuzzy relaxation: preserve the attention level first, then fall back
	// to medium attention, relaxing one zone at a time.
	fuzzyKeys := []catalog.Key{
		{Emotion: current.Emotion, Attention: current.Attention, StressZone: signal.ZoneMid, EngagementZone: engagementZone},
		{Emotion: current.Emotion, Attention: current.Attention, StressZone: stressZone, EngagementZone: signal.ZoneMid},
		{Emotion: current.Emotion, Attention: current.Attention, StressZone: signal.ZoneMid, EngagementZone: signal.ZoneMid},
		{Emotion: current.Emotion, Attention: signal.AttentionMedium, StressZone: stressZone, EngagementZone: engagementZone},
		{Emotion: current.Emotion, Attention: signal.AttentionMedium, StressZone: signal.ZoneMid, EngagementZone: engagementZone},
		{Emotion: current.Emotion, Attention: signal.AttentionMedium, StressZone: signal.ZoneMid, EngagementZone: signal.ZoneMid},
	}
	for _, k := range fuzzyKeys {
		if sel, ok := s.tryKey(k, BranchFuzzy); ok {
			return sel
		}
	}

	// 6. Flow-state shortcut.
	if current.Engagement > flowEngagementAbove && current.Stress < flowStressBelow {
		return Selection{Advice: FlowStateMessage, Branch: BranchFlowState}
	}

	// 7. Rotating generic default.
	pool := s.catalog.Defaults()
	idx := s.defaultIdx % len(pool)
	s.defaultIdx++
	return Selection{Advice: pool[idx], Branch: BranchDefault, Variant: idx}
}

// tryKey records a rotation hit for the key and returns its advice on a
// catalog hit. The hit is recorded on a miss too: the key was the live state,
// and if it appears in the catalog later it resumes mid-escalation.
func (s *Selector) tryKey(k catalog.Key, branch Branch) (Selection, bool) {
	idx := s.rotation.Next(k.String(), s.catalog.VariantCount(k))
	entry, ok := s.catalog.Lookup(k)
	if !ok {
		return Selection{}, false
	}
	return Selection{Advice: entry.Variants[idx], Branch: branch, Key: k.String(), Variant: idx}, true
}

func (s *Selector) tryCrisis(tag catalog.CrisisTag, branch Branch) (Selection, bool) {
	idx := s.rotation.Next(string(tag), s.catalog.CrisisVariantCount(tag))
	entry, ok := s.catalog.LookupCrisis(tag)
	if !ok {
		return Selection{}, false
	}
	return Selection{Advice: entry.Variants[idx], Branch: branch, Key: string(tag), Variant: idx}, true
}

// #endregion selector

// #region dispatch

// crisisForAlerts maps active alerts to a crisis tag. Attention loss wins
// over engagement collapse, which wins over stress, which wins over
// inconsistency.
func crisisForAlerts(alerts []alert.Alert) (catalog.CrisisTag, bool) {
	if hasKind(alerts, alert.KindAttentionLost) {
		return catalog.CrisisAttentionLost, true
	}
	if hasKind(alerts, alert.KindEngagementDropping) || hasKind(alerts, alert.KindVeryLowEngagement) {
		return catalog.CrisisEngagementDrop, true
	}
	if hasKind(alerts, alert.KindStressSpiking) || hasKind(alerts, alert.KindHighStress) {
		return catalog.CrisisStressSpike, true
	}
	if hasKind(alerts, alert.KindInconsistency) {
		return catalog.CrisisInconsistency, true
	}
	return "", false
}

func hasKind(alerts []alert.Alert, kind alert.Kind) bool {
	for _, a := range alerts {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// distinctEmotions counts unique emotions across the trailing window plus
// the current frame.
func distinctEmotions(window []signal.Snapshot, current signal.Emotion) int {
	seen := map[signal.Emotion]bool{current: true}
	for _, s := range window {
		seen[s.Emotion] = true
	}
	return len(seen)
}

// #endregion dispatch
