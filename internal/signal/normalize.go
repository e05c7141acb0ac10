package signal

// #region defaults

// Documented defaults for unrecognized categorical values. Collaborators
// (perception client, fixture loaders) normalize at the boundary so the
// engine core only ever sees valid enum values.
const (
	DefaultEmotion     = EmotionNeutral
	DefaultAttention   = AttentionMedium
	DefaultPosture     = PostureNeutral
	DefaultMovement    = MovementModerate
	DefaultSpeechSpeed = SpeechNormal
	DefaultPauses      = PausesMinimal
	DefaultTone        = ToneNeutral
)

// #endregion defaults

// #region valid-sets

var validEmotions = map[Emotion]bool{
	EmotionNeutral: true, EmotionHappy: true, EmotionSad: true,
	EmotionAngry: true, EmotionSurprised: true, EmotionDisgusted: true,
	EmotionFearful: true,
}

var validAttentions = map[Attention]bool{
	AttentionHigh: true, AttentionMedium: true, AttentionLow: true,
}

var validPostures = map[Posture]bool{
	PostureNeutral: true, PostureUpright: true,
	PostureLeaningForward: true, PostureSlouched: true,
}

var validMovements = map[Movement]bool{
	MovementStill: true, MovementModerate: true, MovementRestless: true,
}

var validSpeechSpeeds = map[SpeechSpeed]bool{
	SpeechFast: true, SpeechNormal: true, SpeechSlow: true, SpeechSilent: true,
}

var validPauses = map[Pauses]bool{
	PausesFrequent: true, PausesMinimal: true, PausesNone: true,
}

var validTones = map[Tone]bool{
	ToneStressed: true, ToneCalm: true, ToneNeutral: true, ToneExcited: true,
}

// Valid reports whether e is a known emotion value.
func (e Emotion) Valid() bool { return validEmotions[e] }

// Valid reports whether a is a known attention value.
func (a Attention) Valid() bool { return validAttentions[a] }

// Valid reports whether p is a known posture value.
func (p Posture) Valid() bool { return validPostures[p] }

// Valid reports whether m is a known movement value.
func (m Movement) Valid() bool { return validMovements[m] }

// Valid reports whether s is a known speech-speed value.
func (s SpeechSpeed) Valid() bool { return validSpeechSpeeds[s] }

// Valid reports whether p is a known pauses value.
func (p Pauses) Valid() bool { return validPauses[p] }

// Valid reports whether t is a known tone value.
func (t Tone) Valid() bool { return validTones[t] }

// #endregion valid-sets

// #region parsers

// ParseEmotion returns the emotion for s, or the default when unrecognized.
func ParseEmotion(s string) Emotion {
	if e := Emotion(s); e.Valid() {
		return e
	}
	return DefaultEmotion
}

// ParseAttention returns the attention level for s, or the default when unrecognized.
func ParseAttention(s string) Attention {
	if a := Attention(s); a.Valid() {
		return a
	}
	return DefaultAttention
}

// ParsePosture returns the posture for s, or the default when unrecognized.
func ParsePosture(s string) Posture {
	if p := Posture(s); p.Valid() {
		return p
	}
	return DefaultPosture
}

// ParseMovement returns the movement for s, or the default when unrecognized.
func ParseMovement(s string) Movement {
	if m := Movement(s); m.Valid() {
		return m
	}
	return DefaultMovement
}

// ParseSpeechSpeed returns the speech speed for s, or the default when unrecognized.
func ParseSpeechSpeed(s string) SpeechSpeed {
	if sp := SpeechSpeed(s); sp.Valid() {
		return sp
	}
	return DefaultSpeechSpeed
}

// ParsePauses returns the pauses value for s, or the default when unrecognized.
func ParsePauses(s string) Pauses {
	if p := Pauses(s); p.Valid() {
		return p
	}
	return DefaultPauses
}

// ParseTone returns the tone for s, or the default when unrecognized.
func ParseTone(s string) Tone {
	if t := Tone(s); t.Valid() {
		return t
	}
	return DefaultTone
}

// #endregion parsers
