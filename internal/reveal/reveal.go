// Package reveal holds the timing rules for scroll-triggered reveals and
// the hero counter animation.
package reveal

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// StaggerStep separates consecutive elements of one reveal group.
	StaggerStep = 60 * time.Millisecond
	// ObserverStep separates elements that intersect in the same callback.
	ObserverStep = 80 * time.Millisecond
	// FallbackDelay forces every pending element visible, covering a
	// missed intersection notification.
	FallbackDelay = 3 * time.Second

	Threshold  = 0.08
	RootMargin = "0px 0px -20px 0px"

	// CounterDuration is how long the hero counters take to count up.
	CounterDuration = 1200 * time.Millisecond
	// CounterThreshold is the visible fraction that starts the counters.
	CounterThreshold = 0.5
)

// Infinity is a counter value that is never animated.
const Infinity = "∞"

// Stagger returns the transition delay of the index-th element of a group.
func Stagger(base time.Duration, index int) time.Duration {
	return base + time.Duration(index)*StaggerStep
}

// ObserverDelay returns how long to wait before revealing the index-th
// entry of an intersection batch.
func ObserverDelay(index int) time.Duration {
	return time.Duration(index) * ObserverStep
}

// EaseOutCubic maps linear progress in [0, 1] onto a decelerating curve.
func EaseOutCubic(progress float64) float64 {
	p := math.Min(math.Max(progress, 0), 1)
	return 1 - math.Pow(1-p, 3)
}

// CountUp returns the counter text at the given progress. The numeric
// prefix of target is scaled by the eased progress and rounded; any other
// characters are kept as a suffix. Once progress reaches 1 the exact target
// is returned.
func CountUp(target string, progress float64) string {
	if target == Infinity || progress >= 1 {
		return target
	}

	num, ok := leadingNumber(target)
	if !ok {
		return target
	}
	suffix := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return -1
		}
		return r
	}, target)

	return strconv.Itoa(int(math.Round(num*EaseOutCubic(progress)))) + suffix
}

// Progress converts elapsed time into counter progress.
func Progress(elapsed time.Duration) float64 {
	return math.Min(float64(elapsed)/float64(CounterDuration), 1)
}

func leadingNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && ((s[end] >= '0' && s[end] <= '9') || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v, true
		}
		end--
	}
	return 0, false
}

// Settings are the reveal and counter parameters a page client needs.
type Settings struct {
	Threshold         float64 `json:"threshold"`
	RootMargin        string  `json:"root_margin"`
	StaggerMs         int64   `json:"stagger_ms"`
	ObserverStaggerMs int64   `json:"observer_stagger_ms"`
	FallbackMs        int64   `json:"fallback_ms"`
	CounterMs         int64   `json:"counter_ms"`
	CounterThreshold  float64 `json:"counter_threshold"`
}

// DefaultSettings returns the page reveal settings
func DefaultSettings() Settings {
	return Settings{
		Threshold:         Threshold,
		RootMargin:        RootMargin,
		StaggerMs:         StaggerStep.Milliseconds(),
		ObserverStaggerMs: ObserverStep.Milliseconds(),
		FallbackMs:        FallbackDelay.Milliseconds(),
		CounterMs:         CounterDuration.Milliseconds(),
		CounterThreshold:  CounterThreshold,
	}
}
