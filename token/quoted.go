package token

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// decodeQuoted resolves JSON-style escapes in the body of a quoted string
// (the bytes between the delimiting quotes). It validates UTF-8 and
// reconstructs supplementary code points from \uXXXX surrogate pairs,
// reporting an unpaired surrogate as an error rather than emitting the
// Unicode replacement character.
func decodeQuoted(body []byte, start Pos) (string, error) {
	var out []byte
	i := 0
	n := len(body)
	pos := start
	advance := func(k int) {
		for j := 0; j < k; j++ {
			if i+j < n && body[i+j] == '\n' {
				pos.Line++
				pos.Col = 1
			} else {
				pos.Col++
			}
		}
	}
	for i < n {
		c := body[i]
		if c != '\\' {
			r, size := utf8.DecodeRune(body[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", newScanError(ErrInvalidUTF8, pos, "invalid UTF-8 in string literal")
			}
			out = append(out, body[i:i+size]...)
			advance(size)
			i += size
			continue
		}
		if i+1 >= n {
			return "", newScanError(ErrUnterminatedString, pos, "unterminated escape sequence")
		}
		esc := body[i+1]
		switch esc {
		case '"', '\\', '/':
			out = append(out, esc)
			advance(2)
			i += 2
		case 'b':
			out = append(out, '\b')
			advance(2)
			i += 2
		case 'f':
			out = append(out, '\f')
			advance(2)
			i += 2
		case 'n':
			out = append(out, '\n')
			advance(2)
			i += 2
		case 'r':
			out = append(out, '\r')
			advance(2)
			i += 2
		case 't':
			out = append(out, '\t')
			advance(2)
			i += 2
		case 'u':
			r, consumed, err := decodeUnicodeEscape(body, i+2, pos)
			if err != nil {
				return "", err
			}
			out = utf8.AppendRune(out, r)
			advance(2 + consumed)
			i += 2 + consumed
		default:
			return "", newScanError(ErrBadEscape, pos, "bad escape sequence '\\"+string(esc)+"'")
		}
	}
	return string(out), nil
}

// decodeUnicodeEscape reads one \uXXXX (already past "\u") starting at
// offset start in body, resolving a surrogate pair into a single
// supplementary code point when present. consumed is the number of bytes
// read after "\u" (4, or 10 when a pair was consumed).
func decodeUnicodeEscape(body []byte, start int, pos Pos) (rune, int, error) {
	if start+4 > len(body) {
		return 0, 0, newScanError(ErrBadUnicode, pos, "incomplete \\u escape")
	}
	v, err := strconv.ParseUint(string(body[start:start+4]), 16, 32)
	if err != nil {
		return 0, 0, newScanError(ErrBadUnicode, pos, "invalid \\u escape")
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	// High surrogate must be followed immediately by \uXXXX low surrogate.
	if start+10 <= len(body) && body[start+4] == '\\' && body[start+5] == 'u' {
		v2, err := strconv.ParseUint(string(body[start+6:start+10]), 16, 32)
		if err == nil {
			r2 := rune(v2)
			dec := utf16.DecodeRune(r, r2)
			if dec != utf8.RuneError {
				return dec, 10, nil
			}
		}
	}
	return 0, 0, newScanError(ErrUnpairedSurrogate, pos, "unpaired surrogate in \\u escape")
}
