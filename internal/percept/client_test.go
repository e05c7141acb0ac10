package percept

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/cognisync/go-engine/gen/perceptpb"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region mock

type mockPerceptService struct {
	pb.PerceptServiceClient

	analyzeResp *pb.AnalyzeFrameResponse
	analyzeErr  error

	healthResp *pb.HealthResponse
	healthErr  error
}

func (m *mockPerceptService) AnalyzeFrame(_ context.Context, _ *pb.AnalyzeFrameRequest, _ ...grpc.CallOption) (*pb.AnalyzeFrameResponse, error) {
	return m.analyzeResp, m.analyzeErr
}

func (m *mockPerceptService) Health(_ context.Context, _ *pb.HealthRequest, _ ...grpc.CallOption) (*pb.HealthResponse, error) {
	return m.healthResp, m.healthErr
}

// #endregion mock

// #region constructor-tests

func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockPerceptService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
}

func TestClose_WithoutConnection(t *testing.T) {
	c := NewClientWithService(&mockPerceptService{})
	if err := c.Close(); err != nil {
		t.Errorf("Close on injected-service client: %v", err)
	}
}

// #endregion constructor-tests

// #region analyze-frame-tests

func TestAnalyzeFrame_Success(t *testing.T) {
	mock := &mockPerceptService{
		analyzeResp: &pb.AnalyzeFrameResponse{
			Emotion:      "fearful",
			Attention:    "low",
			Posture:      "slouched",
			Movement:     "restless",
			FaceDetected: true,
		},
	}
	c := NewClientWithService(mock)

	result, err := c.AnalyzeFrame(context.Background(), []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := signal.VisionSignals{
		Emotion:   signal.EmotionFearful,
		Attention: signal.AttentionLow,
		Posture:   signal.PostureSlouched,
		Movement:  signal.MovementRestless,
	}
	if result.Vision != want {
		t.Errorf("vision = %+v, want %+v", result.Vision, want)
	}
	if !result.FaceDetected {
		t.Error("face flag lost")
	}
}

func TestAnalyzeFrame_NormalizesUnknownValues(t *testing.T) {
	mock := &mockPerceptService{
		analyzeResp: &pb.AnalyzeFrameResponse{
			Emotion:   "perplexed",
			Attention: "",
			Posture:   "reclined",
			Movement:  "jittery",
		},
	}
	c := NewClientWithService(mock)

	result, err := c.AnalyzeFrame(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := signal.VisionSignals{
		Emotion:   signal.DefaultEmotion,
		Attention: signal.DefaultAttention,
		Posture:   signal.DefaultPosture,
		Movement:  signal.DefaultMovement,
	}
	if result.Vision != want {
		t.Errorf("vision = %+v, want defaults %+v", result.Vision, want)
	}
}

func TestAnalyzeFrame_Error(t *testing.T) {
	mock := &mockPerceptService{
		analyzeErr: errors.New("rpc failed"),
	}
	c := NewClientWithService(mock)

	_, err := c.AnalyzeFrame(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.analyzeErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion analyze-frame-tests

// #region health-tests

func TestHealth_Success(t *testing.T) {
	mock := &mockPerceptService{
		healthResp: &pb.HealthResponse{Status: "ok", ModelVersion: "v3"},
	}
	c := NewClientWithService(mock)

	status, version, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "ok" || version != "v3" {
		t.Errorf("got %q/%q", status, version)
	}
}

// #endregion health-tests

// #region audio-tests

func TestNormalizeAudio(t *testing.T) {
	got := NormalizeAudio("fast", "frequent", "stressed")
	want := signal.AudioSignals{
		SpeechSpeed: signal.SpeechFast,
		Pauses:      signal.PausesFrequent,
		Tone:        signal.ToneStressed,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = NormalizeAudio("", "", "")
	want = signal.AudioSignals{
		SpeechSpeed: signal.DefaultSpeechSpeed,
		Pauses:      signal.DefaultPauses,
		Tone:        signal.DefaultTone,
	}
	if got != want {
		t.Errorf("empty input: got %+v, want defaults %+v", got, want)
	}
}

// #endregion audio-tests
