package counter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	// Duration is the length of a full count-up.
	Duration = 2 * time.Second
	// Tick is the frame interval (about 60fps).
	Tick = 16 * time.Millisecond
)

// Stat is a headline number shown on the site.
type Stat struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Suffix string `json:"suffix,omitempty"`
}

// Text renders the stat as it appears once the animation has finished.
func (s Stat) Text() string {
	return strconv.Itoa(s.Count) + s.Suffix
}

// SeedStats is the default stats strip.
func SeedStats() []Stat {
	return []Stat{
		{Name: "communities", Label: "Communities Served", Count: 120, Suffix: "+"},
		{Name: "students", Label: "Students Supported", Count: 5000, Suffix: "+"},
		{Name: "volunteers", Label: "Active Volunteers", Count: 850},
		{Name: "funding", Label: "Funds to Programs", Count: 92, Suffix: "%"},
	}
}

// ErrUnknownStat is returned when an override names a stat that is not shown.
var ErrUnknownStat = errors.New("unknown stat")

// ApplyOverrides replaces the count and suffix of named stats with values
// written the way the page shows them, e.g. "5000+". The input is not modified.
func ApplyOverrides(stats []Stat, overrides map[string]string) ([]Stat, error) {
	out := make([]Stat, len(stats))
	copy(out, stats)

	index := make(map[string]int, len(out))
	for i, s := range out {
		index[s.Name] = i
	}

	for name, text := range overrides {
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStat, name)
		}
		count, ok := ParseTarget(text)
		if !ok {
			return nil, fmt.Errorf("invalid count for stat %s: %q", name, text)
		}
		out[i].Count = count
		out[i].Suffix = SuffixOf(strings.TrimSpace(text))
	}
	return out, nil
}

// SuffixOf strips every ASCII digit from text, keeping what follows the number.
func SuffixOf(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, text)
}

// ParseTarget reads the leading integer of a data-count style attribute.
func ParseTarget(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && (unicode.IsDigit(rune(raw[end])) || (end == 0 && (raw[0] == '-' || raw[0] == '+'))) {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Frames returns the text of every animation frame for a count-up from zero
// to target. The last frame is always target+suffix and frames never decrease.
func Frames(target int, suffix string) []string {
	steps := int(Duration / Tick)
	increment := float64(target) / float64(steps)

	frames := make([]string, 0, steps+1)
	count := 0.0
	for {
		count += increment
		if count >= float64(target) {
			return append(frames, strconv.Itoa(target)+suffix)
		}
		frames = append(frames, strconv.Itoa(int(math.Floor(count)))+suffix)
	}
}

// Animate emits frames at the given tick until the animation ends, emit
// fails, or ctx is done.
func Animate(ctx context.Context, target int, suffix string, tick time.Duration, emit func(frame string) error) error {
	frames := Frames(target, suffix)
	if tick <= 0 {
		for _, frame := range frames {
			if err := emit(frame); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for _, frame := range frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := emit(frame); err != nil {
			return err
		}
	}
	return nil
}
