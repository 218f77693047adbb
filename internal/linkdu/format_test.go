package linkdu

import (
	"testing"
)

func TestFormatterFile(t *testing.T) {
	t.Parallel()

	rec := FileRecord{Path: "./data/sub/x.txt", Length: 10}

	tests := []struct {
		name      string
		formatter Formatter
		rec       FileRecord
		want      string
	}{
		{
			name:      "truncated default",
			formatter: Formatter{Prefix: "./data"},
			rec:       rec,
			want:      "/sub/x.txt 10",
		},
		{
			name:      "full name",
			formatter: Formatter{},
			rec:       rec,
			want:      "./data/sub/x.txt 10",
		},
		{
			name:      "size first",
			formatter: Formatter{Prefix: "./data", SizeFirst: true},
			rec:       rec,
			want:      "10 /sub/x.txt",
		},
		{
			name:      "flamegraph",
			formatter: Formatter{Prefix: "./data", Flamegraph: true},
			rec:       rec,
			want:      "sub;x.txt 10",
		},
		{
			name:      "flamegraph wins over size first",
			formatter: Formatter{Prefix: "./data", Flamegraph: true, SizeFirst: true},
			rec:       rec,
			want:      "sub;x.txt 10",
		},
		{
			name:      "flamegraph full name",
			formatter: Formatter{Flamegraph: true},
			rec:       rec,
			want:      ".;data;sub;x.txt 10",
		},
		{
			name:      "flamegraph folds backslashes",
			formatter: Formatter{Prefix: `C:\data`, Flamegraph: true},
			rec:       FileRecord{Path: `C:\data\sub\x.txt`, Length: 3},
			want:      "sub;x.txt 3",
		},
		{
			name:      "flamegraph ignores human readable",
			formatter: Formatter{Prefix: "./data", Flamegraph: true, HumanReadable: true},
			rec:       FileRecord{Path: "./data/big", Length: 4096},
			want:      "big 4096",
		},
		{
			name:      "human readable",
			formatter: Formatter{Prefix: "./data", HumanReadable: true},
			rec:       FileRecord{Path: "./data/big", Length: 4096},
			want:      "/big 4.0 KiB",
		},
		{
			name:      "prefix recurring inside the path is kept",
			formatter: Formatter{Prefix: "data"},
			rec:       FileRecord{Path: "data/sub/data/x", Length: 1},
			want:      "/sub/data/x 1",
		},
		{
			name:      "repeated leading prefix is stripped",
			formatter: Formatter{Prefix: "x/"},
			rec:       FileRecord{Path: "x/x/file", Length: 1},
			want:      "file 1",
		},
		{
			name:      "current directory root",
			formatter: Formatter{Prefix: "."},
			rec:       FileRecord{Path: "./a", Length: 2},
			want:      "/a 2",
		},
		{
			name:      "file root truncates to empty label",
			formatter: Formatter{Prefix: "file.bin"},
			rec:       FileRecord{Path: "file.bin", Length: 7},
			want:      " 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.formatter.File(tt.rec); got != tt.want {
				t.Errorf("File() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterSummary(t *testing.T) {
	t.Parallel()

	sum := RootSummary{Root: "./data", Total: 1536}

	tests := []struct {
		name      string
		formatter Formatter
		want      string
	}{
		{name: "default", formatter: Formatter{}, want: "./data 1536"},
		{name: "size first", formatter: Formatter{SizeFirst: true}, want: "1536 ./data"},
		{name: "prefix is not applied", formatter: Formatter{Prefix: "./data"}, want: "./data 1536"},
		{name: "flamegraph does not fold totals", formatter: Formatter{Flamegraph: true}, want: "./data 1536"},
		{name: "human readable", formatter: Formatter{HumanReadable: true}, want: "./data 1.5 KiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.formatter.Summary(sum); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("flamegraph implies listing", func(t *testing.T) {
		t.Parallel()

		if !(Options{Flamegraph: true}).ListFiles() {
			t.Error("expected ListFiles to be true")
		}
	})

	t.Run("single root is truncated", func(t *testing.T) {
		t.Parallel()

		opt := Options{Roots: []string{"./data"}}
		if got := opt.TruncatePrefix(); got != "./data" {
			t.Errorf("expected \"./data\", got %q", got)
		}
	})

	t.Run("full name disables truncation", func(t *testing.T) {
		t.Parallel()

		opt := Options{Roots: []string{"./data"}, FullName: true}
		if got := opt.TruncatePrefix(); got != "" {
			t.Errorf("expected no prefix, got %q", got)
		}
	})

	t.Run("multiple roots are never truncated", func(t *testing.T) {
		t.Parallel()

		opt := Options{Roots: []string{"a", "b"}}
		if got := opt.TruncatePrefix(); got != "" {
			t.Errorf("expected no prefix, got %q", got)
		}
	})
}
