// Package video renders narrated slideshows of articles with ffmpeg.
package video

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SergeyParamoshkin/newsdesk/internal/ai"
)

const scriptPreviewChars = 200

var (
	// ErrNoContent is returned when the request carries no article text.
	ErrNoContent = errors.New("content is required")
	// ErrNoImages is returned when the request carries no images.
	ErrNoImages = errors.New("at least one image is required")
)

// InvalidImageError reports an upload that ffmpeg could not decode.
type InvalidImageError struct {
	Name   string
	Detail string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image %q: %s", e.Name, e.Detail)
}

// Scripter plans the slides of a video.
type Scripter interface {
	SlideshowScript(ctx context.Context, article string, n int) (ai.Script, error)
}

// Image is one uploaded slide.
type Image struct {
	Name string
	Data []byte
}

// Request describes a video to render.
type Request struct {
	Content string
	Images  []Image
}

// Result describes a rendered video. Paths are relative to the public
// videos prefix.
type Result struct {
	VideoPath   string       `json:"videoPath"`
	AudioPath   *string      `json:"audioPath"`
	Script      string       `json:"script"`
	ImagesCount int          `json:"imagesCount"`
	Duration    float64      `json:"duration"`
	Sections    []ai.Section `json:"sections"`
}

// Generator turns an article and a set of images into an mp4.
type Generator struct {
	scripter Scripter
	speaker  ai.Speaker
	outDir   string
	ffmpeg   string
	run      Runner
	logger   *zap.SugaredLogger
	seconds  metric.Float64Histogram
	now      func() time.Time
	newID    func() string
}

type Option func(*Generator)

// WithSpeaker enables narration.
func WithSpeaker(s ai.Speaker) Option {
	return func(g *Generator) { g.speaker = s }
}

// WithRunner replaces the command runner, mostly for tests.
func WithRunner(r Runner) Option {
	return func(g *Generator) { g.run = r }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithDurationHistogram records how long each render takes.
func WithDurationHistogram(h metric.Float64Histogram) Option {
	return func(g *Generator) { g.seconds = h }
}

func NewGenerator(scripter Scripter, outDir, ffmpegPath string, opts ...Option) *Generator {
	g := &Generator{
		scripter: scripter,
		outDir:   outDir,
		ffmpeg:   ffmpegPath,
		run:      ExecRunner,
		logger:   zap.NewNop().Sugar(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// OutDir is where rendered files are written.
func (g *Generator) OutDir() string {
	return g.outDir
}

// Generate renders req. Intermediate files live in a private temporary
// directory that is removed afterwards; on failure no output is left behind.
func (g *Generator) Generate(ctx context.Context, req Request) (res Result, err error) {
	start := g.now()
	defer func() {
		if g.seconds != nil {
			g.seconds.Record(ctx, time.Since(start).Seconds(),
				metric.WithAttributes(attribute.Bool("success", err == nil)))
		}
	}()

	if req.Content == "" {
		return Result{}, ErrNoContent
	}
	if len(req.Images) == 0 {
		return Result{}, ErrNoImages
	}
	for _, img := range req.Images {
		if len(img.Data) == 0 {
			return Result{}, ErrEmptyImage
		}
	}

	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}
	work, err := os.MkdirTemp("", "newsdesk-video-")
	if err != nil {
		return Result{}, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(work)

	uploads, err := g.writeUploads(ctx, work, req.Images)
	if err != nil {
		return Result{}, err
	}
	slides, err := g.normalize(ctx, work, uploads, req.Images)
	if err != nil {
		return Result{}, err
	}

	script, err := g.scripter.SlideshowScript(ctx, req.Content, len(slides))
	if err != nil {
		return Result{}, fmt.Errorf("plan slides: %w", err)
	}
	if len(script.Sections) != len(slides) {
		return Result{}, fmt.Errorf("plan slides: got %d sections for %d images", len(script.Sections), len(slides))
	}
	if script.Fallback {
		g.logger.Warnw("slideshow script fell back to article paragraphs", "slides", len(slides))
	}

	inputs := make([]slide, len(slides))
	transcripts := make([]string, len(slides))
	var duration float64
	for i, section := range script.Sections {
		inputs[i] = slide{image: slides[i], seconds: slideSeconds(section)}
		transcripts[i] = section.Transcription
		duration += section.Time
		if caption := sanitizeCaption(section.Text); caption != "" {
			inputs[i].captionFile = filepath.Join(work, "caption_"+strconv.Itoa(i)+".txt")
			if err := os.WriteFile(inputs[i].captionFile, []byte(caption), 0o600); err != nil {
				return Result{}, fmt.Errorf("write caption: %w", err)
			}
		}
	}
	if duration == 0 {
		duration = float64(ai.EstimateSeconds(strings.Join(transcripts, "\n\n")))
	}

	stamp := strconv.FormatInt(g.now().UnixMilli(), 10) + "_" + g.newID()
	videoName := "video_" + stamp + ".mp4"
	videoPath := filepath.Join(g.outDir, videoName)

	var audioName, audioPath string
	if g.speaker != nil {
		audioName = "narration_" + stamp + ".mp3"
		audioPath = filepath.Join(g.outDir, audioName)
		if err := g.narrate(ctx, work, script.Sections, audioPath); err != nil {
			g.logger.Warnw("narration failed, rendering without audio", "err", err)
			os.Remove(audioPath)
			audioName, audioPath = "", ""
		}
	}

	if _, err := g.run(ctx, g.ffmpeg, slideshowArgs(inputs, audioPath, videoPath)...); err != nil {
		os.Remove(videoPath)
		if audioPath != "" {
			os.Remove(audioPath)
		}
		return Result{}, fmt.Errorf("render video: %w", err)
	}

	preview, err := json.Marshal(script)
	if err != nil {
		return Result{}, err
	}
	res = Result{
		VideoPath:   videoName,
		Script:      truncateRunes(string(preview), scriptPreviewChars),
		ImagesCount: len(slides),
		Duration:    duration,
		Sections:    script.Sections,
	}
	if audioName != "" {
		res.AudioPath = &audioName
	}

	g.logger.Infow("video generated", "video", videoName, "slides", len(slides), "duration", duration)

	return res, nil
}

func (g *Generator) writeUploads(ctx context.Context, work string, images []Image) ([]string, error) {
	paths := make([]string, len(images))
	eg, _ := errgroup.WithContext(ctx)
	for i, img := range images {
		paths[i] = filepath.Join(work, "upload_"+strconv.Itoa(i))
		eg.Go(func() error {
			return os.WriteFile(paths[i], img.Data, 0o600)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("write uploads: %w", err)
	}

	return paths, nil
}

// normalize letterboxes every upload onto the first upload's frame size and
// checks each result decodes cleanly with ffmpeg.
func (g *Generator) normalize(ctx context.Context, work string, uploads []string, images []Image) ([]string, error) {
	decoded := make([]image.Image, len(uploads))
	eg, egctx := errgroup.WithContext(ctx)
	for i, path := range uploads {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			img, err := decodeFile(path)
			if err != nil {
				return &InvalidImageError{Name: images[i].Name, Detail: err.Error()}
			}
			decoded[i] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	w, h := frameSize(decoded[0])
	slides := make([]string, len(decoded))
	eg, egctx = errgroup.WithContext(ctx)
	for i, img := range decoded {
		slides[i] = filepath.Join(work, "slide_"+strconv.Itoa(i)+".jpg")
		eg.Go(func() error {
			if err := writeJPEG(slides[i], letterbox(img, w, h)); err != nil {
				return err
			}
			out, err := g.run(egctx, g.ffmpeg, probeArgs(slides[i])...)
			if err != nil {
				return &InvalidImageError{Name: images[i].Name, Detail: err.Error()}
			}
			if detail := lastLines(string(out), 5); detail != "" {
				return &InvalidImageError{Name: images[i].Name, Detail: detail}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return slides, nil
}

func (g *Generator) narrate(ctx context.Context, work string, sections []ai.Section, output string) error {
	var text string
	for _, s := range sections {
		t := s.Transcription
		if t == "" {
			t = s.Text
		}
		if t == "" {
			continue
		}
		if text != "" {
			text += " "
		}
		text += t
	}
	if text == "" {
		return errors.New("nothing to narrate")
	}

	pcm, err := g.speaker.Speak(ctx, text)
	if err != nil {
		return err
	}
	raw := filepath.Join(work, "narration.pcm")
	if err := os.WriteFile(raw, pcm, 0o600); err != nil {
		return err
	}
	_, err = g.run(ctx, g.ffmpeg, narrationArgs(raw, output)...)

	return err
}

func truncateRunes(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}

	return s
}
