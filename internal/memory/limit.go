package memory

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"strconv"

	"beatsite/internal/logging"
)

// DefaultRatio is the share of the container limit given to the Go heap.
const DefaultRatio = 0.9

// Source says where the heap limit came from.
type Source string

const (
	SourceNone       Source = "none"
	SourceGoMemLimit Source = "GOMEMLIMIT"
	SourceContainer  Source = "MEMORY_LIMIT"
)

// Limit is the outcome of Configure.
type Limit struct {
	Source    Source
	Container int64 // bytes, 0 unless Source is SourceContainer
	Heap      int64 // bytes, 0 when no limit is in effect
	Ratio     float64
}

// Applied reports whether a heap limit is in effect.
func (l Limit) Applied() bool {
	return l.Source != SourceNone && l.Heap > 0
}

func (l Limit) String() string {
	switch {
	case !l.Applied():
		return "unlimited"
	case l.Source == SourceContainer:
		return fmt.Sprintf("%s (%.0f%% of %s)", formatBytes(l.Heap), l.Ratio*100, formatBytes(l.Container))
	default:
		return formatBytes(l.Heap) + " (GOMEMLIMIT)"
	}
}

// Configure reads the environment and applies the heap limit. An explicit
// GOMEMLIMIT wins over MEMORY_LIMIT.
func Configure() Limit {
	return configure(os.Getenv, debug.SetMemoryLimit)
}

func configure(getenv func(string) string, setLimit func(int64) int64) Limit {
	if env := getenv("GOMEMLIMIT"); env != "" {
		l := Limit{Source: SourceGoMemLimit}
		if current := setLimit(-1); current > 0 && current < math.MaxInt64 {
			l.Heap = current
		}
		logging.Info("GOMEMLIMIT set via environment: %s", env)
		return l
	}

	raw := getenv("MEMORY_LIMIT")
	if raw == "" {
		logging.Debug("MEMORY_LIMIT not set, heap limit left at the Go default")
		return Limit{Source: SourceNone}
	}

	container, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || container <= 0 {
		logging.Warn("Ignoring MEMORY_LIMIT %q: not a positive byte count", raw)
		return Limit{Source: SourceNone}
	}

	ratio := parseRatio(getenv("MEMORY_RATIO"))
	heap := int64(float64(container) * ratio)
	setLimit(heap)

	l := Limit{Source: SourceContainer, Container: container, Heap: heap, Ratio: ratio}
	logging.Info("Configured GOMEMLIMIT: %s", l)
	return l
}

func parseRatio(raw string) float64 {
	if raw == "" {
		return DefaultRatio
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil || ratio <= 0 || ratio > 1 {
		logging.Warn("MEMORY_RATIO %q out of range (0.0-1.0], using default %.2f", raw, DefaultRatio)
		return DefaultRatio
	}
	return ratio
}

func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return strconv.FormatInt(b, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return strconv.FormatFloat(float64(b)/float64(div), 'f', 1, 64) + " " + string("KMGTPE"[exp]) + "iB"
}
