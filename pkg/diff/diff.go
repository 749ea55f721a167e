package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats summarizes a line diff.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

func (s Stats) String() string {
	return fmt.Sprintf("+%d -%d", s.Added, s.Removed)
}

// Result is a rendered unified diff with its line counts.
type Result struct {
	Text  string
	Stats Stats
}

// Unified compares want and got line by line and renders a unified diff under
// the supplied labels. Identical inputs yield an empty Result. Output is
// deterministic: headers carry no timestamps. Diffs longer than 10,000 lines
// are cut with a truncation marker.
func Unified(want, got []byte, wantLabel, gotLabel string) Result {
	if bytes.Equal(want, got) {
		return Result{}
	}

	dmp := diffmatchpatch.New()
	wantChars, gotChars, lineArray := dmp.DiffLinesToChars(string(want), string(got))
	diffs := dmp.DiffMain(wantChars, gotChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var body strings.Builder
	var stats Stats
	wantCount, gotCount := 0, 0

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			body.WriteString(prefix)
			body.WriteString(line)
			body.WriteByte('\n')

			switch d.Type {
			case diffmatchpatch.DiffEqual:
				wantCount++
				gotCount++
			case diffmatchpatch.DiffDelete:
				wantCount++
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				gotCount++
				stats.Added++
			}
		}
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", wantLabel)
	fmt.Fprintf(&buf, "+++ %s\n", gotLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", wantCount, gotCount)
	buf.WriteString(body.String())

	return Result{Text: truncate(buf.String()), Stats: stats}
}

// GenerateUnifiedDiff returns only the rendered text of Unified.
func GenerateUnifiedDiff(want, got []byte, wantLabel, gotLabel string) string {
	return Unified(want, got, wantLabel, gotLabel).Text
}

// splitLines breaks a diff chunk into lines, dropping the empty tail left by a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func truncate(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= maxDiffLines {
		return text
	}
	return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
}
