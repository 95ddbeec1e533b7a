package memory

import (
	"testing"
)

type fakeRuntime struct {
	env     map[string]string
	current int64
	set     []int64
}

func (f *fakeRuntime) getenv(key string) string { return f.env[key] }

func (f *fakeRuntime) setLimit(n int64) int64 {
	prev := f.current
	if n >= 0 {
		f.set = append(f.set, n)
		f.current = n
	}
	return prev
}

func TestConfigure(t *testing.T) {
	const gib = 1 << 30

	tests := []struct {
		name       string
		env        map[string]string
		current    int64
		wantSource Source
		wantHeap   int64
		wantRatio  float64
		wantSet    bool
	}{
		{
			name:       "nothing set",
			env:        map[string]string{},
			wantSource: SourceNone,
		},
		{
			name:       "explicit GOMEMLIMIT is reported not changed",
			env:        map[string]string{"GOMEMLIMIT": "512MiB", "MEMORY_LIMIT": "1073741824"},
			current:    512 << 20,
			wantSource: SourceGoMemLimit,
			wantHeap:   512 << 20,
		},
		{
			name:       "container limit with default ratio",
			env:        map[string]string{"MEMORY_LIMIT": "1073741824"},
			wantSource: SourceContainer,
			wantHeap:   int64(float64(gib) * DefaultRatio),
			wantRatio:  DefaultRatio,
			wantSet:    true,
		},
		{
			name:       "container limit with custom ratio",
			env:        map[string]string{"MEMORY_LIMIT": "1073741824", "MEMORY_RATIO": "0.5"},
			wantSource: SourceContainer,
			wantHeap:   gib / 2,
			wantRatio:  0.5,
			wantSet:    true,
		},
		{
			name:       "out of range ratio falls back",
			env:        map[string]string{"MEMORY_LIMIT": "1073741824", "MEMORY_RATIO": "1.5"},
			wantSource: SourceContainer,
			wantHeap:   int64(float64(gib) * DefaultRatio),
			wantRatio:  DefaultRatio,
			wantSet:    true,
		},
		{
			name:       "unparseable limit",
			env:        map[string]string{"MEMORY_LIMIT": "1Gi"},
			wantSource: SourceNone,
		},
		{
			name:       "negative limit",
			env:        map[string]string{"MEMORY_LIMIT": "-5"},
			wantSource: SourceNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &fakeRuntime{env: tt.env, current: tt.current}

			got := configure(rt.getenv, rt.setLimit)

			if got.Source != tt.wantSource {
				t.Errorf("Source = %s, want %s", got.Source, tt.wantSource)
			}
			if got.Heap != tt.wantHeap {
				t.Errorf("Heap = %d, want %d", got.Heap, tt.wantHeap)
			}
			if got.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v, want %v", got.Ratio, tt.wantRatio)
			}
			if tt.wantSet != (len(rt.set) > 0) {
				t.Errorf("setLimit calls = %v, wantSet %v", rt.set, tt.wantSet)
			}
		})
	}
}

func TestLimitString(t *testing.T) {
	tests := []struct {
		limit Limit
		want  string
	}{
		{Limit{Source: SourceNone}, "unlimited"},
		{Limit{Source: SourceGoMemLimit, Heap: 512 << 20}, "512.0 MiB (GOMEMLIMIT)"},
		{Limit{Source: SourceContainer, Container: 1 << 30, Heap: 1 << 29, Ratio: 0.5}, "512.0 MiB (50% of 1.0 GiB)"},
	}
	for _, tt := range tests {
		if got := tt.limit.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1 << 20, "1.0 MiB"},
		{5 << 30, "5.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
