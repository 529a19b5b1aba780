package firewall

import (
	"strings"
	"unicode"
)

// Normalize tidies generated ruleset text:
//   - every blank line is dropped, and exactly one blank line is put back
//     before each comment that is not the first line
//   - blank lines right after a line ending in "{" are dropped
//   - blank lines between a comment and a following comment are dropped
//
// Trailing whitespace at the end of the text is trimmed. Line content is
// never changed and non-blank lines keep their order. Normalize(Normalize(s))
// equals Normalize(s).
func Normalize(text string) string {
	lines := splitLines(text)
	lines = separateComments(lines)
	lines = trimAfterOpenBrace(lines)
	lines = joinCommentRuns(lines)
	return strings.TrimRightFunc(strings.Join(lines, "\n"), unicode.IsSpace)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

func separateComments(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if isComment(line) && len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return out
}

func trimAfterOpenBrace(lines []string) []string {
	out := make([]string, 0, len(lines))
	afterBrace := false
	for _, line := range lines {
		if afterBrace && isBlank(line) {
			continue
		}
		out = append(out, line)
		afterBrace = strings.HasSuffix(strings.TrimSpace(line), "{")
	}
	return out
}

func joinCommentRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		out = append(out, line)
		if !isComment(line) {
			continue
		}

		j := i + 1
		for j < len(lines) && isBlank(lines[j]) {
			j++
		}
		if j > i+1 && j < len(lines) && isComment(lines[j]) {
			i = j - 1
		}
	}
	return out
}
