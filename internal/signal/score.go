package signal

// #region weight-tables

// Additive weight tables for score derivation. A categorical value missing
// from a table contributes zero, which keeps scoring total over any input.

var attentionWeight = map[Attention]float32{
	AttentionHigh:   30,
	AttentionMedium: 10,
	AttentionLow:    -20,
}

var emotionEngagement = map[Emotion]float32{
	EmotionHappy:     15,
	EmotionSurprised: 10,
	EmotionNeutral:   0,
	EmotionSad:       -10,
	EmotionAngry:     -5,
	EmotionDisgusted: -15,
	EmotionFearful:   -10,
}

var postureEngagement = map[Posture]float32{
	PostureUpright:        10,
	PostureLeaningForward: 15,
	PostureNeutral:        0,
	PostureSlouched:       -15,
}

var speechEngagement = map[SpeechSpeed]float32{
	SpeechFast:   -5,
	SpeechNormal: 5,
	SpeechSlow:   0,
	SpeechSilent: -10,
}

var emotionStress = map[Emotion]float32{
	EmotionFearful:   40,
	EmotionAngry:     35,
	EmotionDisgusted: 25,
	EmotionSad:       20,
	EmotionSurprised: 15,
	EmotionNeutral:   5,
	EmotionHappy:     -10,
}

var toneStress = map[Tone]float32{
	ToneStressed: 25,
	ToneCalm:     -10,
	ToneNeutral:  0,
	ToneExcited:  10,
}

var pauseStress = map[Pauses]float32{
	PausesFrequent: 15,
	PausesMinimal:  0,
	PausesNone:     5,
}

var movementStress = map[Movement]float32{
	MovementRestless: 20,
	MovementModerate: 5,
	MovementStill:    -5,
}

var postureConfidence = map[Posture]float32{
	PostureUpright:        20,
	PostureLeaningForward: 15,
	PostureNeutral:        0,
	PostureSlouched:       -20,
}

var emotionConfidence = map[Emotion]float32{
	EmotionHappy:     15,
	EmotionNeutral:   5,
	EmotionSurprised: -5,
	EmotionAngry:     -10,
	EmotionFearful:   -25,
	EmotionSad:       -15,
	EmotionDisgusted: -10,
}

var speechConfidence = map[SpeechSpeed]float32{
	SpeechFast:   -5,
	SpeechNormal: 10,
	SpeechSlow:   -5,
	SpeechSilent: -15,
}

// #endregion weight-tables

// #region score

// Score baselines before the additive lookups are applied.
const (
	engagementBaseline float32 = 50
	stressBaseline     float32 = 20
	confidenceBaseline float32 = 50
)

// Score derives engagement, stress, and confidence from one frame's
// categorical signals. Pure and deterministic; each result is clamped to
// [0, 100] as the final step. No rounding happens here.
func Score(vision VisionSignals, audio AudioSignals) (engagement, stress, confidence float32) {
	engagement = engagementBaseline +
		attentionWeight[vision.Attention] +
		emotionEngagement[vision.Emotion] +
		postureEngagement[vision.Posture] +
		speechEngagement[audio.SpeechSpeed]

	stress = stressBaseline +
		emotionStress[vision.Emotion] +
		toneStress[audio.Tone] +
		pauseStress[audio.Pauses] +
		movementStress[vision.Movement]

	confidence = confidenceBaseline +
		attentionWeight[vision.Attention]*0.5 +
		postureConfidence[vision.Posture] +
		emotionConfidence[vision.Emotion] +
		speechConfidence[audio.SpeechSpeed]

	return clampScore(engagement), clampScore(stress), clampScore(confidence)
}

// NewSnapshot scores the given signals into an immutable Snapshot.
func NewSnapshot(vision VisionSignals, audio AudioSignals) Snapshot {
	engagement, stress, confidence := Score(vision, audio)
	return Snapshot{
		Emotion:    vision.Emotion,
		Attention:  vision.Attention,
		Posture:    vision.Posture,
		Movement:   vision.Movement,
		Audio:      audio,
		Engagement: engagement,
		Stress:     stress,
		Confidence: confidence,
	}
}

// clampScore restricts v to [0, 100].
func clampScore(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// #endregion score
