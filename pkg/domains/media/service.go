package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/pathfinder/pkg/config"
	"github.com/pathfinder/pkg/dtos"
	"github.com/pathfinder/pkg/errs"
	"github.com/rs/zerolog"
)

const (
	defaultStyle = "realistic"
	defaultRatio = "16:9"
)

// Generator is the external image/video generation API.
type Generator interface {
	GenerateImages(ctx context.Context, model string, prompt string) ([]string, error)
	GenerateVideo(ctx context.Context, model string, prompt string, ratio string) (videoURL string, taskID string, err error)
}

type Service interface {
	GenerateImage(ctx context.Context, req dtos.GenerateImageDTO) (dtos.GenerateImageResponseDTO, error)
	GenerateVideo(ctx context.Context, req dtos.GenerateVideoDTO) (dtos.GenerateVideoResponseDTO, error)
}

type service struct {
	generator Generator
	config    config.Media
	log       zerolog.Logger
}

func NewService(g Generator, cfg config.Media, log zerolog.Logger) Service {
	return &service{
		generator: g,
		config:    cfg,
		log:       log.With().Str("component", "media").Logger(),
	}
}

func (s *service) GenerateImage(ctx context.Context, req dtos.GenerateImageDTO) (dtos.GenerateImageResponseDTO, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return dtos.GenerateImageResponseDTO{}, fmt.Errorf("%w: prompt is required", errs.ErrValidation)
	}
	model := req.Model
	if model == "" {
		model = s.config.ImageModel
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	output, err := s.generator.GenerateImages(ctx, model, req.Prompt)
	if err != nil {
		return dtos.GenerateImageResponseDTO{}, fmt.Errorf("%w: generate image with %s: %w", errs.ErrUpstream, model, err)
	}
	if len(output) == 0 {
		return dtos.GenerateImageResponseDTO{}, fmt.Errorf("%w: %s returned no images", errs.ErrUpstream, model)
	}

	s.log.Info().Str("model", model).Int("images", len(output)).Msg("image generated")
	return dtos.GenerateImageResponseDTO{Output: output}, nil
}

// GenerateVideo starts a video generation and waits for it to finish. The
// style is folded into the prompt since the API has no style parameter.
func (s *service) GenerateVideo(ctx context.Context, req dtos.GenerateVideoDTO) (dtos.GenerateVideoResponseDTO, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return dtos.GenerateVideoResponseDTO{}, fmt.Errorf("%w: prompt is required", errs.ErrValidation)
	}
	style := req.Style
	if style == "" {
		style = defaultStyle
	}
	ratio := req.Ratio
	if ratio == "" {
		ratio = defaultRatio
	}
	prompt := fmt.Sprintf("%s. Style: %s.", strings.TrimRight(strings.TrimSpace(req.Prompt), "."), style)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	videoURL, taskID, err := s.generator.GenerateVideo(ctx, s.config.VideoModel, prompt, ratio)
	if err != nil {
		return dtos.GenerateVideoResponseDTO{}, fmt.Errorf("%w: generate video: %w", errs.ErrUpstream, err)
	}

	s.log.Info().Str("task_id", taskID).Msg("video generated")
	return dtos.GenerateVideoResponseDTO{VideoURL: videoURL, TaskID: taskID}, nil
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}
