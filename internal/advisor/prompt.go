package advisor

import (
	"fmt"
	"strings"

	"github.com/cognisync/go-engine/internal/alert"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region system-prompt

// SystemPrompt frames the model as a tactical behavioral analyst and bans
// generic advice.
const SystemPrompt = `You are CogniSync, an elite real-time behavioral intelligence agent trained in FBI hostage negotiation (Chris Voss), Cialdini's influence principles, emotional intelligence (Goleman), and nonverbal signal analysis (Navarro).

Your task: analyze live multi-modal signals and give ONE sharp, specific, actionable tactical intervention — 1 to 2 sentences max.

RULES:
1. NEVER say generic things like "maintain your approach" or "watch for shifts."
2. Always reference the SPECIFIC signal you're responding to.
3. Suggest a SPECIFIC action: a question to ask, phrase to say, silence to hold, or body language to mirror.
4. If the same state has persisted for multiple frames, suggest a DIFFERENT technique than a basic rapport-builder.
5. Be direct, tactical, think like an intelligence analyst.
6. Reference the trend if something changed across the last 2-3 states.`

// #endregion system-prompt

// #region build-prompt

// BuildPrompt renders the live-signal prompt: current signals and scores,
// score deltas against the previous frame, the recent emotion sequence, and
// any active alerts.
func BuildPrompt(current signal.Snapshot, history []signal.Snapshot, alerts []alert.Alert) string {
	var trend strings.Builder

	if len(history) >= 2 {
		prev := history[len(history)-1]
		fmt.Fprintf(&trend, "\nTREND: Engagement %s | Stress %s | Confidence %s",
			signedDelta(current.Engagement-prev.Engagement),
			signedDelta(current.Stress-prev.Stress),
			signedDelta(current.Confidence-prev.Confidence))
	}
	if len(history) >= 3 {
		seq := make([]string, 0, 4)
		for _, h := range history[len(history)-3:] {
			seq = append(seq, string(h.Emotion))
		}
		seq = append(seq, string(current.Emotion))
		fmt.Fprintf(&trend, "\nEmotion sequence: %s", strings.Join(seq, " → "))
	}

	alertText := ""
	if len(alerts) > 0 {
		reasons := make([]string, len(alerts))
		for i, a := range alerts {
			reasons[i] = a.Reason
		}
		alertText = fmt.Sprintf("\nACTIVE ALERTS: %s", strings.Join(reasons, "; "))
	}

	return fmt.Sprintf(
		"LIVE SIGNALS:\n"+
			"Emotion: %s | Posture: %s | Attention: %s | Movement: %s\n"+
			"Speech: %s | Pauses: %s | Tone: %s\n"+
			"Engagement: %.0f%% | Stress: %.0f%% | Confidence: %.0f%%"+
			"%s%s\n\n"+
			"Provide ONE tactical intervention (1-2 sentences). Be specific, psychological, actionable.",
		current.Emotion, current.Posture, current.Attention, current.Movement,
		current.Audio.SpeechSpeed, current.Audio.Pauses, current.Audio.Tone,
		current.Engagement, current.Stress, current.Confidence,
		trend.String(), alertText,
	)
}

// signedDelta renders a delta with an explicit plus sign and a percent sign.
func signedDelta(v float32) string {
	if v >= 0 {
		return fmt.Sprintf("+%.0f%%", v)
	}
	return fmt.Sprintf("%.0f%%", v)
}

// #endregion build-prompt
