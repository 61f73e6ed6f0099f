package charmap

// romExtra lists the characters of the built-in character generator ROM
// outside printable ASCII.
var romExtra = map[string]string{
	// Substitutions in the ASCII range.
	"\u3000": "\x20",
	"[[": "\x5B",
	"¥": "\x5C",
	"]]": "\x5D",
	"→": "\x7E",
	"←": "\x7F",

	// Katakana and Japanese punctuation.
	"。": "\xA1",
	"「": "\xA2",
	"」": "\xA3",
	"、": "\xA4",
	"・": "\xA5",
	"ヲ": "\xA6",
	"ァ": "\xA7",
	"ィ": "\xA8",
	"ゥ": "\xA9",
	"ェ": "\xAA",
	"ォ": "\xAB",
	"ャ": "\xAC",
	"ュ": "\xAD",
	"ョ": "\xAE",
	"ッ": "\xAF",
	"ー": "\xB0",
	"ア": "\xB1",
	"イ": "\xB2",
	"ウ": "\xB3",
	"エ": "\xB4",
	"オ": "\xB5",
	"カ": "\xB6",
	"キ": "\xB7",
	"ク": "\xB8",
	"ケ": "\xB9",
	"コ": "\xBA",
	"サ": "\xBB",
	"シ": "\xBC",
	"ス": "\xBD",
	"セ": "\xBE",
	"ソ": "\xBF",
	"タ": "\xC0",
	"チ": "\xC1",
	"ツ": "\xC2",
	"テ": "\xC3",
	"ト": "\xC4",
	"ナ": "\xC5",
	"ニ": "\xC6",
	"ヌ": "\xC7",
	"ネ": "\xC8",
	"ノ": "\xC9",
	"ハ": "\xCA",
	"ヒ": "\xCB",
	"フ": "\xCC",
	"ヘ": "\xCD",
	"ホ": "\xCE",
	"マ": "\xCF",
	"ミ": "\xD0",
	"ム": "\xD1",
	"メ": "\xD2",
	"モ": "\xD3",
	"ヤ": "\xD4",
	"ユ": "\xD5",
	"ヨ": "\xD6",
	"ラ": "\xD7",
	"リ": "\xD8",
	"ル": "\xD9",
	"レ": "\xDA",
	"ロ": "\xDB",
	"ワ": "\xDC",
	"ン": "\xDD",
	"゛": "\xDE",
	"゜": "\xDF",

	// Voiced and semi-voiced katakana: base code followed by a mark.
	"ガ": "\xB6\xDE",
	"ギ": "\xB7\xDE",
	"グ": "\xB8\xDE",
	"ゲ": "\xB9\xDE",
	"ゴ": "\xBA\xDE",
	"ザ": "\xBB\xDE",
	"ジ": "\xBC\xDE",
	"ズ": "\xBD\xDE",
	"ゼ": "\xBE\xDE",
	"ゾ": "\xBF\xDE",
	"ダ": "\xC0\xDE",
	"ヂ": "\xC1\xDE",
	"ヅ": "\xC2\xDE",
	"デ": "\xC3\xDE",
	"ド": "\xC4\xDE",
	"バ": "\xCA\xDE",
	"ビ": "\xCB\xDE",
	"ブ": "\xCC\xDE",
	"ベ": "\xCD\xDE",
	"ボ": "\xCE\xDE",
	"パ": "\xCA\xDF",
	"ピ": "\xCB\xDF",
	"プ": "\xCC\xDF",
	"ペ": "\xCD\xDF",
	"ポ": "\xCE\xDF",

	// Box drawing, symbols and Greek letters.
	"┌": "\x09",
	"┐": "\x0A",
	"└": "\x0B",
	"┘": "\x0C",
	"®": "\x0E",
	"©": "\x0F",
	"™": "\x10",
	"†": "\x11",
	"§": "\x12",
	"¶": "\x13",
	"Γ": "\x14",
	"Δ": "\x15",
	"θ": "\x16",
	"Λ": "\x17",
	"Ξ": "\x18",
	"Π": "\x19",
	"Σ": "\x1A",
	"γ": "\x1B",
	"Ψ": "\x1D",
	"Ω": "\x1E",
	"α": "\x1F",

	// Accented Latin.
	"ς": "\x80",
	"ü": "\x81",
	"é": "\x82",
	"â": "\x83",
	"ä": "\x84",
	"à": "\x85",
	"å": "\x86",
	"ê": "\x88",
	"ë": "\x89",
	"è": "\x8A",
	"ï": "\x8B",
	"î": "\x8C",
	"ì": "\x8D",
	"Ä": "\x8E",
	"Å": "\x8F",

	// Accented Latin, combining marks and math symbols.
	"Φ": "\xEE",
	"á": "\xE0",
	"í": "\xE1",
	"ó": "\xE2",
	"ú": "\xE3",
	"￠": "\xE4",
	"£": "\xE5",
	"¡": "\xE7",
	"∮": "\xE8",
	"Ã": "\xEA",
	"ã": "\xEB",
	"Õ": "\xEC",
	"õ": "\xED",
	"φ": "\xEF",
	"\u0307": "\xF0",
	"\u0308": "\xF1",
	"\u030A": "\xF2",
	"\u0300": "\xF3",
	"\u0301": "\xF4",
	"½": "\xF5",
	"¼": "\xF6",
	"×": "\xF7",
	"÷": "\xF8",
	"≧": "\xF9",
	"≦": "\xFA",
	"≪": "\xFB",
	"≫": "\xFC",
	"≠": "\xFD",
	"√": "\xFE",
	"⌒": "\xFF",
}

// romEntries returns the full ROM table. Printable ASCII maps to its own code.
func romEntries() map[string]string {
	m := make(map[string]string, 0x5F+len(romExtra))
	for c := byte(0x20); c <= 0x7E; c++ {
		m[string(rune(c))] = string([]byte{c})
	}
	for k, v := range romExtra {
		m[k] = v
	}
	return m
}
