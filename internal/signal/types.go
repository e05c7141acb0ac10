package signal

// #region vision-enums

// Emotion is the categorical facial-affect signal from the perception service.
type Emotion string

const (
	EmotionNeutral   Emotion = "neutral"
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAngry     Emotion = "angry"
	EmotionSurprised Emotion = "surprised"
	EmotionDisgusted Emotion = "disgusted"
	EmotionFearful   Emotion = "fearful"
)

// Attention is the gaze/head-pose attention level.
type Attention string

const (
	AttentionHigh   Attention = "high"
	AttentionMedium Attention = "medium"
	AttentionLow    Attention = "low"
)

// Posture is the categorical body-pose signal.
type Posture string

const (
	PostureNeutral        Posture = "neutral"
	PostureUpright        Posture = "upright"
	PostureLeaningForward Posture = "leaning_forward"
	PostureSlouched       Posture = "slouched"
)

// Movement is the coarse motion-energy signal.
type Movement string

const (
	MovementStill    Movement = "still"
	MovementModerate Movement = "moderate"
	MovementRestless Movement = "restless"
)

// #endregion vision-enums

// #region audio-enums

// SpeechSpeed is the paralinguistic speaking-rate signal.
type SpeechSpeed string

const (
	SpeechFast   SpeechSpeed = "fast"
	SpeechNormal SpeechSpeed = "normal"
	SpeechSlow   SpeechSpeed = "slow"
	SpeechSilent SpeechSpeed = "silent"
)

// Pauses is the pause-frequency signal.
type Pauses string

const (
	PausesFrequent Pauses = "frequent"
	PausesMinimal  Pauses = "minimal"
	PausesNone     Pauses = "none"
)

// Tone is the vocal-tone signal.
type Tone string

const (
	ToneStressed Tone = "stressed"
	ToneCalm     Tone = "calm"
	ToneNeutral  Tone = "neutral"
	ToneExcited  Tone = "excited"
)

// #endregion audio-enums

// #region signal-records

// VisionSignals bundles the categorical vision channels for one frame.
type VisionSignals struct {
	Emotion   Emotion   `json:"emotion"`
	Attention Attention `json:"attention"`
	Posture   Posture   `json:"posture"`
	Movement  Movement  `json:"movement"`
}

// AudioSignals bundles the speech-paralinguistic channels for one frame.
type AudioSignals struct {
	SpeechSpeed SpeechSpeed `json:"speech_speed"`
	Pauses      Pauses      `json:"pauses"`
	Tone        Tone        `json:"tone"`
}

// Snapshot is one fully scored behavioral instant. Immutable once built;
// the call that produced it owns it until it is appended to a history store.
type Snapshot struct {
	Emotion    Emotion      `json:"emotion"`
	Attention  Attention    `json:"attention"`
	Posture    Posture      `json:"posture"`
	Movement   Movement     `json:"movement"`
	Audio      AudioSignals `json:"audio"`
	Engagement float32      `json:"engagement_score"`
	Stress     float32      `json:"stress_score"`
	Confidence float32      `json:"confidence_score"`
}

// Vision returns the categorical vision channels of the snapshot.
func (s Snapshot) Vision() VisionSignals {
	return VisionSignals{
		Emotion:   s.Emotion,
		Attention: s.Attention,
		Posture:   s.Posture,
		Movement:  s.Movement,
	}
}

// #endregion signal-records

// #region zones

// Zone is the coarse low/mid/high bucket of a continuous score.
type Zone string

const (
	ZoneLow  Zone = "low"
	ZoneMid  Zone = "mid"
	ZoneHigh Zone = "high"
)

// Zone thresholds: below zoneLowBelow → low, above zoneHighAbove → high.
const (
	zoneLowBelow  float32 = 35
	zoneHighAbove float32 = 65
)

// ZoneOf buckets a 0-100 score into low/mid/high.
func ZoneOf(v float32) Zone {
	if v < zoneLowBelow {
		return ZoneLow
	}
	if v > zoneHighAbove {
		return ZoneHigh
	}
	return ZoneMid
}

// #endregion zones
