package moodlog

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"
)

const markdownTitle = "# Mood journal"

// EncodeMarkdown renders entries as a journal with one "## YYYY-MM-DD"
// section per day, oldest day first. Entries keep their insertion order
// inside a day. Line breaks inside a reason are flattened to spaces. An
// emotion containing ':' or a line break cannot be read back and is refused
// with ErrDelimiterInField.
func EncodeMarkdown(entries []Entry) (string, error) {
	for i, entry := range entries {
		if strings.ContainsAny(string(entry.Emotion), ":\r\n") {
			return "", fmt.Errorf("entry %d: %w: emotion %q", i+1, ErrDelimiterInField, entry.Emotion)
		}
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var b strings.Builder
	b.WriteString(markdownTitle)
	b.WriteString("\n")

	var current time.Time
	for i, entry := range sorted {
		if i == 0 || !sameDay(current, entry.Date) {
			current = entry.Date
			b.WriteString("\n")
			b.WriteString(dateHeading(current))
			b.WriteString("\n")
		}
		b.WriteString(formatMarkdownEntry(entry))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func dateHeading(date time.Time) string {
	return fmt.Sprintf("## %04d-%02d-%02d", date.Year(), date.Month(), date.Day())
}

func formatMarkdownEntry(entry Entry) string {
	reason := strings.Join(strings.Fields(entry.Reason), " ")

	var builder strings.Builder
	builder.Grow(16 + len(entry.Emotion) + len(reason))
	fmt.Fprintf(&builder, "- [%s] %s:", entry.Time.Format(TimeLayout), entry.Emotion)
	if reason != "" {
		builder.WriteByte(' ')
		builder.WriteString(reason)
	}
	return builder.String()
}

var entryPattern = regexp.MustCompile(`^- \[(\d{2}:\d{2})\] ([^:]+):(?: (.*))?$`)

// DecodeMarkdown reads a journal produced by EncodeMarkdown. Lines that look
// like entries but fail to parse are malformed; other lines are ignored.
func DecodeMarkdown(r io.Reader, opts DecodeOptions) (Decoded, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	decoded := Decoded{Format: FormatMarkdown}
	scanner := bufio.NewScanner(r)

	var (
		section *time.Time
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if date, ok := parseSectionHeading(line, opts.Location); ok {
			section = &date
			continue
		}
		if !strings.HasPrefix(line, "- ") {
			continue
		}

		entry, err := parseEntryLine(line, section)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			if !opts.SkipMalformed {
				return Decoded{}, err
			}
			decoded.Skipped = append(decoded.Skipped, err)
			continue
		}
		decoded.Entries = append(decoded.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return Decoded{}, err
	}
	return decoded, nil
}

func parseSectionHeading(line string, loc *time.Location) (time.Time, bool) {
	if !strings.HasPrefix(line, "## ") {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation(DateLayout, strings.TrimSpace(line[3:]), loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

func parseEntryLine(line string, section *time.Time) (Entry, error) {
	if section == nil {
		return Entry{}, fmt.Errorf("%w: entry outside a date section", ErrMalformedRecord)
	}
	matches := entryPattern.FindStringSubmatch(line)
	if matches == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	return buildEntry(*section, matches[1], strings.TrimSpace(matches[2]), matches[3])
}
