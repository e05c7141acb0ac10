package percept

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/cognisync/go-engine/gen/perceptpb"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region types

// FrameResult holds the normalized vision signals for one analyzed frame.
type FrameResult struct {
	Vision       signal.VisionSignals
	FaceDetected bool
}

// #endregion types

// #region client

// Client wraps the gRPC connection to the Python perception service. It is
// the normalization boundary: whatever strings the service emits, only valid
// enum values leave this package.
type Client struct {
	conn   *grpc.ClientConn
	client pb.PerceptServiceClient
}

// NewClient connects to the perception gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewPerceptServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.PerceptServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection. No-op for clients built over an
// injected service, which own no connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion client

// #region analyze-frame

// AnalyzeFrame sends a JPEG frame to the perception service and returns
// normalized categorical vision signals.
func (c *Client) AnalyzeFrame(ctx context.Context, frameJPEG []byte) (FrameResult, error) {
	resp, err := c.client.AnalyzeFrame(ctx, &pb.AnalyzeFrameRequest{
		FrameJpeg: frameJPEG,
	})
	if err != nil {
		return FrameResult{}, fmt.Errorf("analyze frame rpc: %w", err)
	}

	return FrameResult{
		Vision: signal.VisionSignals{
			Emotion:   signal.ParseEmotion(resp.Emotion),
			Attention: signal.ParseAttention(resp.Attention),
			Posture:   signal.ParsePosture(resp.Posture),
			Movement:  signal.ParseMovement(resp.Movement),
		},
		FaceDetected: resp.FaceDetected,
	}, nil
}

// #endregion analyze-frame

// #region health

// Health reports the perception service's status and model version.
func (c *Client) Health(ctx context.Context) (string, string, error) {
	resp, err := c.client.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		return "", "", fmt.Errorf("health rpc: %w", err)
	}
	return resp.Status, resp.ModelVersion, nil
}

// #endregion health

// #region audio

// NormalizeAudio maps raw audio feature strings to valid enum values,
// substituting documented defaults for anything unrecognized.
func NormalizeAudio(speechSpeed, pauses, tone string) signal.AudioSignals {
	return signal.AudioSignals{
		SpeechSpeed: signal.ParseSpeechSpeed(speechSpeed),
		Pauses:      signal.ParsePauses(pauses),
		Tone:        signal.ParseTone(tone),
	}
}

// #endregion audio
