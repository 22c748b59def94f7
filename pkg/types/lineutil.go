package types

import "strings"

// SplitLines splits content into lines without terminators. A trailing
// newline does not produce an empty final line, matching how editors count
// lines.
func SplitLines(content []byte) []string {
	s := string(content)
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// DetectLineEnding reports the dominant line terminator in content, "\n"
// when none is found.
func DetectLineEnding(content []byte) string {
	crlf := 0
	lf := 0
	for i, b := range content {
		if b != '\n' {
			continue
		}
		if i > 0 && content[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	if crlf > lf {
		return "\r\n"
	}
	return "\n"
}

// JoinLines reassembles lines with the given terminator, appending a final
// terminator when finalNewline is set.
func JoinLines(lines []string, ending string, finalNewline bool) []byte {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString(ending)
		}
		b.WriteString(line)
	}
	if finalNewline && len(lines) > 0 {
		b.WriteString(ending)
	}
	return []byte(b.String())
}
