package terminal

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/raphi011/choose/internal/prompt"
)

const esc = 0x1b

// csiFinals maps the final byte of a CSI or SS3 cursor sequence to its key.
var csiFinals = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// tildeKeys maps the numeric parameter of "ESC [ n ~" sequences.
var tildeKeys = map[string]string{
	"1": "home",
	"2": "insert",
	"3": "delete",
	"4": "end",
	"5": "pgup",
	"6": "pgdown",
	"7": "home",
	"8": "end",
}

// Decode splits terminal input into keys.
//
// An escape byte at the end of b, or followed by another escape, is the
// escape key itself; anything after "ESC [" or "ESC O" is parsed as a cursor
// sequence. Unknown sequences are dropped. Input holds back a trailing
// unfinished sequence (see pendingEscape) until the rest arrives, so Decode
// only sees a lone ESC at the end when the escape key was really pressed.
func Decode(b []byte) []prompt.Key {
	var keys []prompt.Key

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c == esc:
			k, n, ok := decodeEscape(b[i:])
			if ok {
				keys = append(keys, k)
			}
			i += n
		case c == '\r':
			keys = append(keys, prompt.Key{Name: "return"})
			i++
			// Treat CRLF as one key.
			if i < len(b) && b[i] == '\n' {
				i++
			}
		case c == '\n':
			keys = append(keys, prompt.Key{Name: "return"})
			i++
		case c == '\t':
			keys = append(keys, prompt.Key{Name: "tab"})
			i++
		case c == 0x7f || c == 0x08:
			keys = append(keys, prompt.Key{Name: "backspace"})
			i++
		case c >= 0x01 && c <= 0x1a:
			keys = append(keys, prompt.Key{Name: string(rune('a' + c - 1)), Ctrl: true})
			i++
		case c < 0x20:
			// Remaining C0 controls have no useful name.
			i++
		case c == ' ':
			keys = append(keys, prompt.Key{Name: "space"})
			i++
		default:
			r, size := utf8.DecodeRune(b[i:])
			if r != utf8.RuneError {
				keys = append(keys, prompt.Key{Name: string(r)})
			}
			i += size
		}
	}
	return keys
}

// decodeEscape decodes a sequence starting with ESC and returns the key, the
// number of bytes consumed and whether a key was recognized.
func decodeEscape(b []byte) (prompt.Key, int, bool) {
	if len(b) == 1 || b[1] == esc {
		return prompt.Key{Name: "escape"}, 1, true
	}

	switch b[1] {
	case 'O':
		if len(b) < 3 {
			return prompt.Key{Name: "escape"}, 1, true
		}
		name, ok := csiFinals[b[2]]
		return prompt.Key{Name: name}, 3, ok
	case '[':
		// Parameter bytes are 0x30-0x3f, intermediates 0x20-0x2f, the final
		// byte is 0x40-0x7e.
		j := 2
		for j < len(b) && b[j] >= 0x20 && b[j] <= 0x3f {
			j++
		}
		if j >= len(b) || b[j] < 0x40 || b[j] > 0x7e {
			// Incomplete sequence: report escape and let the rest decode as text.
			return prompt.Key{Name: "escape"}, 1, true
		}
		params := string(b[2:j])
		return decodeCSI(params, b[j], j+1)
	default:
		// Alt+key; there is no binding for it.
		_, size := utf8.DecodeRune(b[1:])
		return prompt.Key{}, 1 + size, false
	}
}

func decodeCSI(params string, final byte, n int) (prompt.Key, int, bool) {
	base, mod, _ := strings.Cut(params, ";")
	ctrl := mod == "5"

	if final == '~' {
		name, ok := tildeKeys[base]
		return prompt.Key{Name: name, Ctrl: ctrl}, n, ok
	}
	name, ok := csiFinals[final]
	return prompt.Key{Name: name, Ctrl: ctrl}, n, ok
}

// pendingEscape returns the length of the unfinished escape sequence at the
// end of b, or 0 if b ends on a key boundary. A lone ESC, "ESC O" and
// "ESC [" followed only by parameter or intermediate bytes are unfinished.
func pendingEscape(b []byte) int {
	i := bytes.LastIndexByte(b, esc)
	if i < 0 {
		return 0
	}
	tail := b[i:]
	if len(tail) == 1 {
		return 1
	}
	switch tail[1] {
	case 'O':
		if len(tail) == 2 {
			return 2
		}
	case '[':
		for _, c := range tail[2:] {
			if c < 0x20 || c > 0x3f {
				return 0
			}
		}
		return len(tail)
	}
	return 0
}
