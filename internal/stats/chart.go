package stats

import (
	"math"

	"github.com/faizmokh/mood/internal/moodlog"
)

// FallbackColor is used for emotions without a palette entry.
const FallbackColor = "#9E9E9E"

// Palette maps emotions to hex colors.
type Palette map[moodlog.Emotion]string

// DefaultPalette colors the built-in emotions.
var DefaultPalette = Palette{
	moodlog.Happy:   "#FFEB3B",
	moodlog.Sad:     "#2196F3",
	moodlog.Anxious: "#F44336",
	moodlog.Relaxed: "#4CAF50",
	moodlog.Excited: "#FF9800",
}

// Color returns the color for emotion or FallbackColor.
func (p Palette) Color(emotion moodlog.Emotion) string {
	if color, ok := p[emotion]; ok && color != "" {
		return color
	}
	return FallbackColor
}

// Bar is one column of the bar chart.
type Bar struct {
	Emotion moodlog.Emotion
	Count   int
	Height  int
}

// Bars scales each count against the largest one so the tallest bar is
// maxHeight units high.
func Bars(counts []Count, maxHeight int) []Bar {
	peak := 0
	for _, c := range counts {
		if c.Count > peak {
			peak = c.Count
		}
	}
	if peak == 0 {
		peak = 1
	}

	bars := make([]Bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, Bar{
			Emotion: c.Emotion,
			Count:   c.Count,
			Height:  int(math.Round(float64(c.Count) / float64(peak) * float64(maxHeight))),
		})
	}
	return bars
}

// Slice is one wedge of the pie chart. Angles are in degrees.
type Slice struct {
	Emotion  moodlog.Emotion
	Count    int
	Fraction float64
	Start    float64
	Angle    float64
	Color    string
}

// Pie converts counts into slices drawn in order, each spanning
// count/total*360 degrees. No slices are returned when the total is zero.
func Pie(counts []Count, palette Palette) []Slice {
	total := Total(counts)
	if total == 0 {
		return nil
	}

	slices := make([]Slice, 0, len(counts))
	start := 0.0
	for _, c := range counts {
		fraction := float64(c.Count) / float64(total)
		angle := fraction * 360
		slices = append(slices, Slice{
			Emotion:  c.Emotion,
			Count:    c.Count,
			Fraction: fraction,
			Start:    start,
			Angle:    angle,
			Color:    palette.Color(c.Emotion),
		})
		start += angle
	}
	return slices
}
