package media

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/pathfinder/pkg/config"
	"google.golang.org/genai"
)

// GenAI generates images and videos through the Google GenAI API.
type GenAI struct {
	client       *genai.Client
	pollInterval time.Duration
}

func NewGenAI(ctx context.Context, cfg config.Media) (*GenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("missing GOOGLE_AI_API_KEY")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = 10 * time.Second
	}
	return &GenAI{client: client, pollInterval: poll}, nil
}

// GenerateImages returns one entry per generated image: its storage URI when
// the API provides one, otherwise a base64 data URI.
func (g *GenAI) GenerateImages(ctx context.Context, model string, prompt string) ([]string, error) {
	resp, err := g.client.Models.GenerateImages(ctx, model, prompt, nil)
	if err != nil {
		return nil, err
	}

	var output []string
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil {
			continue
		}
		if uri := imageURI(generated.Image); uri != "" {
			output = append(output, uri)
		}
	}
	return output, nil
}

func imageURI(img *genai.Image) string {
	if img.GCSURI != "" {
		return img.GCSURI
	}
	if len(img.ImageBytes) == 0 {
		return ""
	}
	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.ImageBytes)
}

// GenerateVideo starts a long-running generation and polls it until done or
// until ctx ends.
func (g *GenAI) GenerateVideo(ctx context.Context, model string, prompt string, ratio string) (string, string, error) {
	op, err := g.client.Models.GenerateVideos(ctx, model, prompt, nil, &genai.GenerateVideosConfig{
		AspectRatio: ratio,
	})
	if err != nil {
		return "", "", err
	}

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for !op.Done {
		select {
		case <-ctx.Done():
			return "", op.Name, fmt.Errorf("video operation %s: %w", op.Name, ctx.Err())
		case <-ticker.C:
		}

		op, err = g.client.Operations.GetVideosOperation(ctx, op, nil)
		if err != nil {
			return "", "", err
		}
	}

	if op.Error != nil {
		return "", op.Name, fmt.Errorf("video operation %s failed: %v", op.Name, op.Error)
	}
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 ||
		op.Response.GeneratedVideos[0] == nil || op.Response.GeneratedVideos[0].Video == nil {
		return "", op.Name, fmt.Errorf("video operation %s returned no video", op.Name)
	}
	return op.Response.GeneratedVideos[0].Video.URI, op.Name, nil
}

// ErrDisabled is returned by Disabled.
var ErrDisabled = errors.New("media generation is not configured")

// Disabled stands in for GenAI when no API key is configured.
type Disabled struct{}

func (Disabled) GenerateImages(context.Context, string, string) ([]string, error) {
	return nil, ErrDisabled
}

func (Disabled) GenerateVideo(context.Context, string, string, string) (string, string, error) {
	return "", "", ErrDisabled
}
