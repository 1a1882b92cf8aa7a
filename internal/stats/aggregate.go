package stats

import (
	"sort"
	"time"

	"github.com/faizmokh/mood/internal/moodlog"
)

// Count is the number of entries recorded for one emotion.
type Count struct {
	Emotion moodlog.Emotion
	Count   int
}

// CountByEmotion groups entries by emotion.
func CountByEmotion(entries []moodlog.Entry) map[moodlog.Emotion]int {
	counts := make(map[moodlog.Emotion]int)
	for _, entry := range entries {
		counts[entry.Emotion]++
	}
	return counts
}

// Ordered flattens counts into a stable sequence: emotions listed in order
// come first, then any other label alphabetically. Zero counts are dropped.
func Ordered(counts map[moodlog.Emotion]int, order []moodlog.Emotion) []Count {
	result := make([]Count, 0, len(counts))
	listed := make(map[moodlog.Emotion]bool, len(order))
	for _, emotion := range order {
		if listed[emotion] {
			continue
		}
		listed[emotion] = true
		if n := counts[emotion]; n > 0 {
			result = append(result, Count{Emotion: emotion, Count: n})
		}
	}

	var rest []Count
	for emotion, n := range counts {
		if listed[emotion] || n <= 0 {
			continue
		}
		rest = append(rest, Count{Emotion: emotion, Count: n})
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].Emotion < rest[j].Emotion })

	return append(result, rest...)
}

// Total sums every count.
func Total(counts []Count) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

// Summary is what the weekly stats screen draws.
type Summary struct {
	Start  time.Time
	End    time.Time
	Counts []Count
	Total  int
}

// Summarize filters entries to w and counts them in display order.
func Summarize(entries []moodlog.Entry, now time.Time, w Window, order []moodlog.Emotion) Summary {
	counts := Ordered(CountByEmotion(InWindow(entries, now, w)), order)
	return Summary{
		Start:  w.Start(now),
		End:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Counts: counts,
		Total:  Total(counts),
	}
}
