// Package cfgjson repairs the pseudo-JSON dialect used by iocmanager.cfg
// inventory files so their records can be decoded with encoding/json.
//
// The dialect is Python-literal flavored: bare identifier keys, bare
// True/False tokens, bare integer values, single-quoted strings, and one
// object per line with a trailing comma separating records. This is not a
// general relaxed-JSON parser; it handles exactly those quirks.
package cfgjson

import "strings"

// Normalize rewrites a raw blob of matched inventory text into one valid
// JSON object string per input line. Lines without a brace-delimited
// record are dropped; empty input yields no output.
func Normalize(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if s := NormalizeLine(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeLine repairs a single pseudo-object line. Each rewrite rule is
// applied as its own full pass over the line so a dialect violation shows
// up in the rule that owns it. Returns "" for lines with no record.
func NormalizeLine(line string) string {
	s := stripFilePrefix(line)
	if !strings.ContainsRune(s, '{') {
		return ""
	}
	s = stripSpace(s)
	s = quoteKeys(s)
	s = fixBooleans(s)
	s = quoteNumbers(s)
	return canonicalize(s)
}

// stripFilePrefix removes a grep-style "<path>.cfg:" prefix prepended
// when a match set spans several inventory files.
func stripFilePrefix(line string) string {
	head := line
	if brace := strings.IndexByte(line, '{'); brace >= 0 {
		head = line[:brace]
	}
	if i := strings.LastIndex(head, "cfg:"); i >= 0 {
		return line[i+len("cfg:"):]
	}
	return line
}

// The dialect never embeds meaningful whitespace inside values, so a
// blanket strip is safe and removes the " {" / "}, " grouping noise.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r':
			return -1
		}
		return r
	}, s)
}

// quoteKeys wraps every bare identifier immediately preceding a colon in
// double quotes, leaving anything already inside quotes alone.
func quoteKeys(s string) string {
	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
			i++
		case c == '\'' || c == '"':
			quote = c
			b.WriteByte(c)
			i++
		case isWord(c):
			j := i
			for j < len(s) && isWord(s[j]) {
				j++
			}
			if j < len(s) && s[j] == ':' {
				b.WriteByte('"')
				b.WriteString(s[i:j])
				b.WriteByte('"')
			} else {
				b.WriteString(s[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// fixBooleans rewrites bare True/False tokens to their JSON forms.
// Word-boundary matched: quoted occurrences are untouched.
func fixBooleans(s string) string {
	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
			i++
		case c == '\'' || c == '"':
			quote = c
			b.WriteByte(c)
			i++
		case isWord(c):
			j := i
			for j < len(s) && isWord(s[j]) {
				j++
			}
			switch s[i:j] {
			case "True":
				b.WriteString("true")
			case "False":
				b.WriteString("false")
			default:
				b.WriteString(s[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// quoteNumbers wraps bare digit runs that follow a colon. Ports and
// numeric ids come out as strings; downstream consumers that want to
// compare them numerically must convert explicitly.
func quoteNumbers(s string) string {
	var b strings.Builder
	var quote byte
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
			b.WriteByte(c)
			i++
		case c == '\'' || c == '"':
			quote = c
			b.WriteByte(c)
			i++
		case c == ':':
			b.WriteByte(c)
			i++
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j > i {
				b.WriteByte('"')
				b.WriteString(s[i:j])
				b.WriteByte('"')
				i = j
			}
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// canonicalize settles on double quotes and drops the record-separator
// comma that follows a closing brace.
func canonicalize(s string) string {
	s = strings.ReplaceAll(s, "'", `"`)
	return strings.ReplaceAll(s, "},", "}")
}

func isWord(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
