package video

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SergeyParamoshkin/newsdesk/internal/ai"
)

const (
	fps             = 25
	videoBitrate    = "1024k"
	audioBitrate    = "128k"
	audioChannels   = "2"
	transitionSecs  = 1.0
	captionStart    = 1.0
	minCaptionEnd   = 0.5
	maxCaptionRunes = 250
)

// slide is one rendered input of the final video.
type slide struct {
	image       string
	captionFile string // empty when the slide has no caption
	seconds     int
}

func slideSeconds(s ai.Section) int {
	return max(1, int(math.Ceil(s.Time)))
}

func captionEnd(seconds int) float64 {
	return math.Max(float64(seconds)-1, minCaptionEnd)
}

// sanitizeCaption collapses whitespace and limits the caption length.
func sanitizeCaption(s string) string {
	return truncateRunes(strings.Join(strings.Fields(s), " "), maxCaptionRunes)
}

func secs(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// slideshowArgs builds the ffmpeg invocation that joins the slides with fade
// transitions, burns in captions and optionally lays narration under them.
func slideshowArgs(slides []slide, audio, output string) []string {
	args := []string{"-y", "-hide_banner"}
	for _, s := range slides {
		args = append(args, "-loop", "1", "-t", strconv.Itoa(s.seconds), "-i", s.image)
	}
	if audio != "" {
		args = append(args, "-i", audio)
	}

	var graph strings.Builder
	for i, s := range slides {
		fade := math.Min(transitionSecs, float64(s.seconds)/2)
		fmt.Fprintf(&graph, "[%d:v]setsar=1,fps=%d,format=yuv420p,fade=t=in:st=0:d=%s,fade=t=out:st=%s:d=%s",
			i, fps, secs(fade), secs(float64(s.seconds)-fade), secs(fade))
		if s.captionFile != "" {
			fmt.Fprintf(&graph, ",drawtext=textfile='%s':fontsize=26:fontcolor=white:borderw=2:bordercolor=black"+
				":box=1:boxcolor=black@0.4:boxborderw=10:x=40:y=h-th-40:enable='between(t,%s,%s)'",
				s.captionFile, secs(captionStart), secs(captionEnd(s.seconds)))
		}
		fmt.Fprintf(&graph, "[v%d];", i)
	}
	for i := range slides {
		fmt.Fprintf(&graph, "[v%d]", i)
	}
	fmt.Fprintf(&graph, "concat=n=%d:v=1:a=0[v]", len(slides))
	if audio != "" {
		fmt.Fprintf(&graph, ";[%d:a]apad[a]", len(slides))
	}

	args = append(args, "-filter_complex", graph.String(), "-map", "[v]")
	if audio != "" {
		args = append(args, "-map", "[a]", "-c:a", "aac", "-b:a", audioBitrate, "-ac", audioChannels, "-shortest")
	}

	return append(args,
		"-c:v", "libx264", "-b:v", videoBitrate, "-pix_fmt", "yuv420p", "-r", strconv.Itoa(fps),
		"-movflags", "+faststart", output)
}

// narrationArgs transcodes raw speech PCM to mp3.
func narrationArgs(pcm, output string) []string {
	return []string{
		"-y", "-hide_banner",
		"-f", "s16le", "-ar", strconv.Itoa(ai.SpeechSampleRate), "-ac", strconv.Itoa(ai.SpeechChannels), "-i", pcm,
		"-codec:a", "libmp3lame", "-qscale:a", "2", output,
	}
}

// probeArgs decodes a file fully; any output means ffmpeg found a problem.
func probeArgs(file string) []string {
	return []string{"-v", "error", "-i", file, "-f", "null", "-"}
}
