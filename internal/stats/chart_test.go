package stats

import (
	"math"
	"testing"

	"github.com/faizmokh/mood/internal/moodlog"
)

func TestBarsScaleAgainstPeak(t *testing.T) {
	counts := []Count{
		{Emotion: moodlog.Happy, Count: 4},
		{Emotion: moodlog.Sad, Count: 1},
		{Emotion: moodlog.Relaxed, Count: 2},
	}

	bars := Bars(counts, 200)
	wantHeights := []int{200, 50, 100}
	for i, bar := range bars {
		if bar.Height != wantHeights[i] {
			t.Fatalf("bar %s height = %d, want %d", bar.Emotion, bar.Height, wantHeights[i])
		}
	}

	if got := Bars(nil, 10); len(got) != 0 {
		t.Fatalf("Bars(nil) = %v, want none", got)
	}
}

func TestPieAnglesSumToFullCircle(t *testing.T) {
	counts := []Count{
		{Emotion: moodlog.Happy, Count: 2},
		{Emotion: moodlog.Sad, Count: 1},
		{Emotion: "Feliz", Count: 1},
	}

	slices := Pie(counts, DefaultPalette)
	if len(slices) != 3 {
		t.Fatalf("slices = %d, want 3", len(slices))
	}
	if slices[0].Angle != 180 || slices[1].Start != 180 || slices[1].Angle != 90 || slices[2].Start != 270 {
		t.Fatalf("unexpected geometry: %+v", slices)
	}

	sum := 0.0
	for _, s := range slices {
		sum += s.Angle
	}
	if math.Abs(sum-360) > 1e-9 {
		t.Fatalf("angles sum = %v, want 360", sum)
	}

	if slices[0].Color != DefaultPalette[moodlog.Happy] {
		t.Fatalf("Happy color = %q", slices[0].Color)
	}
	if slices[2].Color != FallbackColor {
		t.Fatalf("unmapped color = %q, want fallback", slices[2].Color)
	}
}

func TestPieEmpty(t *testing.T) {
	if slices := Pie(nil, DefaultPalette); slices != nil {
		t.Fatalf("Pie(nil) = %v, want nil", slices)
	}
}
