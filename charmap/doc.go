// Package charmap provides the character table of the AQM0802 display controller.
//
// The controller (a Sitronix ST7032) renders one code per cell from its
// character generator ROM. The ROM holds printable ASCII at its usual
// positions, half-width katakana from 0xA1 to 0xDF, and a selection of
// symbols, Greek letters and accented Latin letters in the remaining slots.
//
// Voiced katakana have no glyph of their own. They are written as the base
// kana followed by the voiced mark, so one character takes two cells:
//
//	ガ → 0xB6 0xDE
//	パ → 0xCA 0xDF
//
// The ROM has a few quirks that the table keeps as is: "[[" and "]]" are
// accepted as two-character tokens for the bracket codes, 0x5C is the yen
// sign and 0x7E/0x7F are arrows.
//
// Example usage:
//
//	codes, err := charmap.Default().Encode("ガス 21.5C")
//	if err != nil {
//		// err matches charmap.ErrUnsupportedCharacter
//	}
//	fmt.Printf("% X\n", codes) // Output: B6 DE BD 20 32 31 2E 35 43
package charmap
