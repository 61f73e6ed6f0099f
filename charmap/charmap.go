// Package charmap maps text to the character codes of the AQM0802 (ST7032)
// character generator ROM.
//
// Most characters map to a single code. Voiced and semi-voiced katakana map to
// two codes, the base kana followed by the 0xDE or 0xDF mark, and occupy two
// cells on the display.
package charmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Modifier codes appended to a base kana.
const (
	Voiced     byte = 0xDE
	SemiVoiced byte = 0xDF
)

// ErrUnsupportedCharacter is matched by every *UnsupportedCharacterError.
var ErrUnsupportedCharacter = errors.New("charmap: unsupported character")

// UnsupportedCharacterError is returned when text contains a character that
// has no entry in the table.
type UnsupportedCharacterError struct {
	Char string
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("charmap: unsupported character %q", e.Char)
}

// Is reports whether target is ErrUnsupportedCharacter.
func (e *UnsupportedCharacterError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}

// Table is an immutable character to code mapping.
type Table struct {
	codes map[string]string
	// tokens are keys spanning more than one grapheme cluster.
	tokens []string
}

// New builds a Table from entries. Each value holds the 1 or 2 codes emitted
// for its key. Keys with a canonical decomposition are also reachable through
// the decomposed form.
func New(entries map[string]string) (*Table, error) {
	t := &Table{codes: make(map[string]string, len(entries)*2)}
	for k, v := range entries {
		if k == "" {
			return nil, errors.New("charmap: empty key")
		}
		if len(v) < 1 || len(v) > 2 {
			return nil, fmt.Errorf("charmap: %q must map to 1 or 2 codes, got %d", k, len(v))
		}
		t.codes[k] = v
		if uniseg.GraphemeClusterCount(k) > 1 {
			t.tokens = append(t.tokens, k)
		}
	}
	for k, v := range entries {
		d := norm.NFD.String(k)
		if _, ok := t.codes[d]; !ok {
			t.codes[d] = v
		}
	}
	return t, nil
}

// Len returns the number of keys in the table, decomposed aliases included.
func (t *Table) Len() int {
	return len(t.codes)
}

// Lookup returns the codes for a single character.
func (t *Table) Lookup(char string) ([]byte, bool) {
	v, ok := t.codes[char]
	if !ok {
		return nil, false
	}
	return []byte(v), true
}

// Encode converts text to the flat sequence of codes to send to the
// controller. Nothing is returned when any character is missing.
func (t *Table) Encode(text string) ([]byte, error) {
	out := make([]byte, 0, len(text))
	state := -1
	for len(text) > 0 {
		if tok := t.token(text); tok != "" {
			out = append(out, t.codes[tok]...)
			text = text[len(tok):]
			state = -1
			continue
		}
		var g string
		g, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		v, ok := t.codes[g]
		if !ok {
			return nil, &UnsupportedCharacterError{Char: g}
		}
		out = append(out, v...)
	}
	return out, nil
}

func (t *Table) token(text string) string {
	for _, tok := range t.tokens {
		if strings.HasPrefix(text, tok) {
			return tok
		}
	}
	return ""
}

var defaultTable = mustNew(romEntries())

func mustNew(entries map[string]string) *Table {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the table for the AQM0802 built-in character ROM.
func Default() *Table {
	return defaultTable
}
