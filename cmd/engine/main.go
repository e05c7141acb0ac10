package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cognisync/go-engine/internal/advisor"
	"github.com/cognisync/go-engine/internal/catalog"
	"github.com/cognisync/go-engine/internal/engine"
	"github.com/cognisync/go-engine/internal/percept"
	"github.com/cognisync/go-engine/internal/seslog"
	"github.com/cognisync/go-engine/internal/session"
	"github.com/cognisync/go-engine/internal/signal"
)

// #region input

// frameInput is one JSON line on stdin: inline vision signals, or a frame
// path resolved through the perception service.
type frameInput struct {
	FramePath string `json:"frame_path,omitempty"`
	Vision    *struct {
		Emotion   string `json:"emotion"`
		Attention string `json:"attention"`
		Posture   string `json:"posture"`
		Movement  string `json:"movement"`
	} `json:"vision,omitempty"`
	Audio struct {
		SpeechSpeed string `json:"speech_speed"`
		Pauses      string `json:"pauses"`
		Tone        string `json:"tone"`
	} `json:"audio"`
}

// #endregion input

// #region main
func main() {
	dbPath := envOr("COGNISYNC_DB", "cognisync.db")
	perceptAddr := envOr("PERCEPT_ADDR", "localhost:50051")
	catalogPath := os.Getenv("COGNISYNC_CATALOG")
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("ADVISOR_MODEL")

	cat := catalog.Builtin()
	if catalogPath != "" {
		loaded, err := catalog.Load(catalogPath)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
		cat = loaded
		log.Printf("[ENGINE] loaded catalog %s (%d keys)", catalogPath, cat.Len())
	}

	store, err := seslog.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open decision log: %v", err)
	}
	defer store.Close()

	var adv engine.Advisor
	if apiKey != "" {
		adv = advisor.NewClient(apiKey, model)
	} else {
		log.Println("[ENGINE] no OPENAI_API_KEY set, running selector-only")
	}

	var perceptClient *percept.Client
	connectPercept := func() *percept.Client {
		if perceptClient != nil {
			return perceptClient
		}
		c, err := percept.NewClient(perceptAddr)
		if err != nil {
			log.Printf("[ENGINE] percept connect failed: %v", err)
			return nil
		}
		perceptClient = c
		return c
	}
	defer func() {
		if perceptClient != nil {
			perceptClient.Close()
		}
	}()

	manager := session.NewManager(cat)
	sess := manager.Create()
	if err := store.CreateSession(sess.ID, sess.CreatedAt); err != nil {
		log.Fatalf("failed to register session: %v", err)
	}

	eng := engine.New(adv)

	fmt.Println("CogniSync Behavioral Engine ready.")
	fmt.Printf("  DB: %s | Percept: %s | Session: %s\n", dbPath, perceptAddr, sess.ID)
	fmt.Println("Paste one JSON frame per line (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		var in frameInput
		if err := json.Unmarshal([]byte(line), &in); err != nil {
			log.Printf("bad frame input: %v", err)
			continue
		}

		vision, ok := resolveVision(in, connectPercept)
		if !ok {
			continue
		}
		audio := percept.NormalizeAudio(in.Audio.SpeechSpeed, in.Audio.Pauses, in.Audio.Tone)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		res := eng.Analyze(ctx, sess, vision, audio)
		cancel()

		printResult(res)

		row, err := seslog.FromResult(res)
		if err != nil {
			log.Printf("logging error: %v", err)
			continue
		}
		if err := store.LogDecision(row); err != nil {
			log.Printf("logging error: %v", err)
		}
	}
}

// #endregion main

// #region helpers

// resolveVision returns inline signals directly, or sends the frame file to
// the perception service.
func resolveVision(in frameInput, connect func() *percept.Client) (signal.VisionSignals, bool) {
	if in.Vision != nil {
		return signal.VisionSignals{
			Emotion:   signal.ParseEmotion(in.Vision.Emotion),
			Attention: signal.ParseAttention(in.Vision.Attention),
			Posture:   signal.ParsePosture(in.Vision.Posture),
			Movement:  signal.ParseMovement(in.Vision.Movement),
		}, true
	}
	if in.FramePath == "" {
		log.Printf("frame input needs either vision signals or frame_path")
		return signal.VisionSignals{}, false
	}

	client := connect()
	if client == nil {
		return signal.VisionSignals{}, false
	}
	frame, err := os.ReadFile(in.FramePath)
	if err != nil {
		log.Printf("read frame %s: %v", in.FramePath, err)
		return signal.VisionSignals{}, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result, err := client.AnalyzeFrame(ctx, frame)
	if err != nil {
		log.Printf("percept error: %v", err)
		return signal.VisionSignals{}, false
	}
	if !result.FaceDetected {
		log.Printf("[ENGINE] no face detected in %s", in.FramePath)
	}
	return result.Vision, true
}

func printResult(res engine.Result) {
	snap := res.Snapshot
	fmt.Printf("\n[frame %d] engagement=%.1f stress=%.1f confidence=%.1f\n",
		res.Seq, snap.Engagement, snap.Stress, snap.Confidence)
	for _, a := range res.Alerts {
		fmt.Printf("  ALERT %s: %s\n", a.Kind, a.Reason)
	}
	fmt.Printf("  advice (%s): %s\n", res.Source, res.Advice)
	if res.Source == engine.SourceEngine {
		fmt.Printf("  branch=%s key=%s variant=%d elapsed=%.1fms\n",
			res.Selection.Branch, res.Selection.Key, res.Selection.Variant,
			float64(res.Elapsed)/float64(time.Millisecond))
	}
	fmt.Println()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
