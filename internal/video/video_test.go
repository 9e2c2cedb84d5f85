package video

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyParamoshkin/newsdesk/internal/ai"
)

type fakeScripter struct {
	sections []ai.Section
	err      error
}

func (f fakeScripter) SlideshowScript(_ context.Context, _ string, n int) (ai.Script, error) {
	if f.err != nil {
		return ai.Script{}, f.err
	}

	return ai.Script{Sections: f.sections[:n]}, nil
}

type fakeSpeaker struct {
	pcm []byte
	err error
}

func (f fakeSpeaker) Speak(context.Context, string) ([]byte, error) {
	return f.pcm, f.err
}

// recorder stands in for ffmpeg. onRender is called for the final encode.
type recorder struct {
	mu       sync.Mutex
	calls    [][]string
	probe    []byte
	onRender func(args []string) error
}

func (r *recorder) run(_ context.Context, _ string, args ...string) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, args)
	r.mu.Unlock()

	switch {
	case slices.Contains(args, "null"):
		return r.probe, nil
	case slices.Contains(args, "s16le"):
		return nil, os.WriteFile(args[len(args)-1], []byte("mp3"), 0o600)
	}

	if r.onRender != nil {
		return nil, r.onRender(args)
	}

	return nil, os.WriteFile(args[len(args)-1], []byte("mp4"), 0o600)
}

func (r *recorder) render() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.calls {
		if slices.Contains(c, "-filter_complex") {
			return c
		}
	}

	return nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

var sections = []ai.Section{
	{Time: 4, Text: "Primeiro   slide", Transcription: "Narração do primeiro"},
	{Time: 2.5, Text: "", Transcription: "Narração do segundo"},
	{Time: 3, Text: "Terceiro", Transcription: ""},
}

func newTestGenerator(t *testing.T, rec *recorder, opts ...Option) *Generator {
	t.Helper()

	g := NewGenerator(fakeScripter{sections: sections}, t.TempDir(), "ffmpeg", append(opts, WithRunner(rec.run))...)
	g.now = func() time.Time { return time.UnixMilli(1700000000123) }
	g.newID = func() string { return "c0ffee" }

	return g
}

func TestGenerate(t *testing.T) {
	var captions []string
	rec := &recorder{}
	rec.onRender = func(args []string) error {
		for _, a := range args {
			if i := strings.Index(a, "textfile='"); i >= 0 {
				rest := a[i+len("textfile='"):]
				for rest != "" {
					end := strings.IndexByte(rest, '\'')
					b, err := os.ReadFile(rest[:end])
					if err != nil {
						return err
					}
					captions = append(captions, string(b))
					next := strings.Index(rest, "textfile='")
					if next < 0 {
						break
					}
					rest = rest[next+len("textfile='"):]
				}
			}
		}
		return os.WriteFile(args[len(args)-1], []byte("mp4"), 0o600)
	}
	g := newTestGenerator(t, rec)

	res, err := g.Generate(context.Background(), Request{
		Content: "# Artigo\n\nTexto.",
		Images:  []Image{{Name: "a.png", Data: pngBytes(t, 64, 36)}, {Name: "b.png", Data: pngBytes(t, 20, 20)}},
	})
	require.NoError(t, err)

	assert.Equal(t, "video_1700000000123_c0ffee.mp4", res.VideoPath)
	assert.Nil(t, res.AudioPath)
	assert.Equal(t, 2, res.ImagesCount)
	assert.Equal(t, 6.5, res.Duration)
	assert.Len(t, res.Sections, 2)
	assert.LessOrEqual(t, len([]rune(res.Script)), scriptPreviewChars)
	assert.FileExists(t, filepath.Join(g.OutDir(), res.VideoPath))
	assert.Equal(t, []string{"Primeiro slide"}, captions)

	args := strings.Join(rec.render(), " ")
	assert.Contains(t, args, "-loop 1 -t 4 -i")
	assert.Contains(t, args, "-loop 1 -t 3 -i")
	assert.Contains(t, args, "concat=n=2:v=1:a=0[v]")
	assert.Contains(t, args, "between(t,1,3)")
	assert.Contains(t, args, "-c:v libx264 -b:v 1024k -pix_fmt yuv420p -r 25")
	assert.NotContains(t, args, "-shortest")
	assert.Len(t, rec.calls, 3, "two probes and one render")
}

// hugePNG is a valid PNG header claiming a w x h canvas.
func hugePNG(t *testing.T, w, h uint32) []byte {
	t.Helper()

	b := pngBytes(t, 1, 1)
	binary.BigEndian.PutUint32(b[16:20], w)
	binary.BigEndian.PutUint32(b[20:24], h)
	binary.BigEndian.PutUint32(b[29:33], crc32.ChecksumIEEE(b[12:29]))

	return b
}

func TestGenerateRejectsOversizedCanvas(t *testing.T) {
	rec := &recorder{}
	g := newTestGenerator(t, rec)

	_, err := g.Generate(context.Background(), Request{Content: "x", Images: []Image{
		{Name: "a.png", Data: pngBytes(t, 8, 8)},
		{Name: "bomb.png", Data: hugePNG(t, 100_000, 100_000)},
	}})

	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "bomb.png", invalid.Name)
	assert.Contains(t, invalid.Detail, "100000x100000")
	assert.Empty(t, rec.calls, "nothing reaches ffmpeg")
}

func TestDecodeFileChecksPixelBudget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(path, hugePNG(t, 8000, 6000), 0o600))

	_, err := decodeFile(path)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	require.NoError(t, os.WriteFile(path, pngBytes(t, 4, 3), 0o600))
	img, err := decodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestGenerateEstimatesDurationFromNarration(t *testing.T) {
	g := NewGenerator(fakeScripter{sections: []ai.Section{
		{Time: 0, Text: "Um", Transcription: strings.Repeat("a", 1400)},
	}}, t.TempDir(), "ffmpeg", WithRunner((&recorder{}).run))

	res, err := g.Generate(context.Background(), Request{Content: "short", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}})
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Duration)

	g = NewGenerator(fakeScripter{sections: []ai.Section{
		{Time: 0, Transcription: strings.Repeat("a", 140)},
		{Time: 0, Transcription: strings.Repeat("b", 140)},
	}}, t.TempDir(), "ffmpeg", WithRunner((&recorder{}).run))

	res, err = g.Generate(context.Background(), Request{Content: strings.Repeat("z", 5000), Images: []Image{
		{Name: "a.png", Data: pngBytes(t, 8, 8)},
		{Name: "b.png", Data: pngBytes(t, 8, 8)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Duration, "282 narrated runes, not the article length")
}

func TestGenerateNamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(fakeScripter{sections: sections}, dir, "ffmpeg", WithRunner((&recorder{}).run))
	g.now = func() time.Time { return time.UnixMilli(1700000000123) }
	req := Request{Content: "x", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}}

	first, err := g.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.VideoPath, second.VideoPath)
	assert.True(t, strings.HasPrefix(first.VideoPath, "video_1700000000123_"))
	assert.FileExists(t, filepath.Join(dir, first.VideoPath))
	assert.FileExists(t, filepath.Join(dir, second.VideoPath))
}

func TestGenerateRejectsBadInput(t *testing.T) {
	g := newTestGenerator(t, &recorder{})

	_, err := g.Generate(context.Background(), Request{Images: []Image{{Data: []byte{1}}}})
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = g.Generate(context.Background(), Request{Content: "x"})
	assert.ErrorIs(t, err, ErrNoImages)

	_, err = g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.png"}}})
	assert.ErrorIs(t, err, ErrEmptyImage)

	_, err = g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.txt", Data: []byte("not an image")}}})
	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "a.txt", invalid.Name)
}

func TestGenerateProbeFailure(t *testing.T) {
	g := newTestGenerator(t, &recorder{probe: []byte("Invalid data found when processing input\n")})

	_, err := g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}})

	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Detail, "Invalid data")
}

func TestGenerateRenderFailureLeavesNothing(t *testing.T) {
	rec := &recorder{onRender: func(args []string) error {
		require.NoError(t, os.WriteFile(args[len(args)-1], []byte("partial"), 0o600))
		return errors.New("exit status 1")
	}}
	g := newTestGenerator(t, rec, WithSpeaker(fakeSpeaker{pcm: []byte{0, 1}}))

	_, err := g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}})
	require.ErrorContains(t, err, "render video")

	entries, err := os.ReadDir(g.OutDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateWithNarration(t *testing.T) {
	rec := &recorder{}
	g := newTestGenerator(t, rec, WithSpeaker(fakeSpeaker{pcm: []byte{0, 1, 2, 3}}))

	res, err := g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}})
	require.NoError(t, err)

	require.NotNil(t, res.AudioPath)
	assert.Equal(t, "narration_1700000000123_c0ffee.mp3", *res.AudioPath)
	args := strings.Join(rec.render(), " ")
	assert.Contains(t, args, filepath.Join(g.OutDir(), *res.AudioPath))
	assert.Contains(t, args, "[1:a]apad[a]")
	assert.Contains(t, args, "-shortest")
}

func TestGenerateNarrationFailureIsNotFatal(t *testing.T) {
	rec := &recorder{}
	g := newTestGenerator(t, rec, WithSpeaker(fakeSpeaker{err: errors.New("tts down")}))

	res, err := g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}})
	require.NoError(t, err)

	assert.Nil(t, res.AudioPath)
	assert.NotContains(t, strings.Join(rec.render(), " "), "apad")
}

func TestGenerateScriptError(t *testing.T) {
	g := NewGenerator(fakeScripter{err: context.Canceled}, t.TempDir(), "ffmpeg", WithRunner((&recorder{}).run))

	_, err := g.Generate(context.Background(), Request{Content: "x", Images: []Image{{Name: "a.png", Data: pngBytes(t, 8, 8)}}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSlideshowArgsShortSlide(t *testing.T) {
	args := slideshowArgs([]slide{{image: "s.jpg", captionFile: "c.txt", seconds: 1}}, "", "out.mp4")

	graph := args[slices.Index(args, "-filter_complex")+1]
	assert.Contains(t, graph, "fade=t=in:st=0:d=0.5,fade=t=out:st=0.5:d=0.5")
	assert.Contains(t, graph, "between(t,1,0.5)")
	assert.Equal(t, "out.mp4", args[len(args)-1])
}

func TestSanitizeCaption(t *testing.T) {
	assert.Equal(t, "a b c", sanitizeCaption(" a\n b\t c "))
	assert.Len(t, []rune(sanitizeCaption(strings.Repeat("é", 300))), maxCaptionRunes)
}

func TestFrameSize(t *testing.T) {
	w, h := frameSize(nil)
	assert.Equal(t, []int{1280, 720}, []int{w, h})

	w, h = frameSize(image.NewRGBA(image.Rect(0, 0, 641, 363)))
	assert.Equal(t, []int{640, 362}, []int{w, h})
}

func TestLetterbox(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			src.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}

	dst := letterbox(src, 100, 100)

	assert.Equal(t, color.RGBA{A: 255}, dst.RGBAAt(50, 5), "bar above the picture")
	mid := dst.RGBAAt(50, 50)
	assert.Greater(t, mid.G, uint8(250))
	assert.Zero(t, mid.R)
}
