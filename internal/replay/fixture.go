package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cognisync/go-engine/internal/signal"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Frames          []FixtureFrame          `json:"frames"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// AdvisorSource marks a frame whose live decision came from the advisory
// path. The selector never fired on such a frame, so replay must not fire
// it either or rotation counters drift.
const AdvisorSource = "advisor"

// FixtureFrame is one recorded frame of categorical signals.
type FixtureFrame struct {
	FrameID string               `json:"frame_id"`
	Source  string               `json:"source,omitempty"`
	Vision  FixtureVisionSignals `json:"vision"`
	Audio   FixtureAudioSignals  `json:"audio"`
}

// FixtureVisionSignals mirrors signal.VisionSignals with raw string values,
// so fixtures survive enum additions and are normalized on load.
type FixtureVisionSignals struct {
	Emotion   string `json:"emotion"`
	Attention string `json:"attention"`
	Posture   string `json:"posture"`
	Movement  string `json:"movement"`
}

// FixtureAudioSignals mirrors signal.AudioSignals with raw string values.
type FixtureAudioSignals struct {
	SpeechSpeed string `json:"speech_speed"`
	Pauses      string `json:"pauses"`
	Tone        string `json:"tone"`
}

// FixtureExpectedResult captures the expected selector outcome per frame.
type FixtureExpectedResult struct {
	FrameID string `json:"frame_id"`
	Branch  string `json:"branch"`
	Key     string `json:"key,omitempty"`
	Variant int    `json:"variant"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToVision normalizes the fixture's raw vision strings into enum values.
func (f *FixtureFrame) ToVision() signal.VisionSignals {
	return signal.VisionSignals{
		Emotion:   signal.ParseEmotion(f.Vision.Emotion),
		Attention: signal.ParseAttention(f.Vision.Attention),
		Posture:   signal.ParsePosture(f.Vision.Posture),
		Movement:  signal.ParseMovement(f.Vision.Movement),
	}
}

// ToAudio normalizes the fixture's raw audio strings into enum values.
func (f *FixtureFrame) ToAudio() signal.AudioSignals {
	return signal.AudioSignals{
		SpeechSpeed: signal.ParseSpeechSpeed(f.Audio.SpeechSpeed),
		Pauses:      signal.ParsePauses(f.Audio.Pauses),
		Tone:        signal.ParseTone(f.Audio.Tone),
	}
}

// #endregion fixture-loader
