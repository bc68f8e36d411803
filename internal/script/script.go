// Package script provides UTF-8 decoding and Khmer character classification
// shared by the normalizer, the Viterbi engine, and the rule engine.
//
// All scanning functions work on byte offsets into a UTF-8 string; none of
// them allocate. Malformed UTF-8 decodes to codepoint 0 with width 1 so that
// callers stay live on arbitrary byte sequences.
package script

// Khmer script codepoint boundaries.
const (
	ConsonantFirst  = 0x1780 // ក
	ConsonantLast   = 0x17A2 // អ
	IndepVowelFirst = 0x17A3
	IndepVowelLast  = 0x17B3
	DepVowelFirst   = 0x17B6
	DepVowelLast    = 0x17C5
	Coeng           = 0x17D2
	KhmerDigitFirst = 0x17E0
	KhmerDigitLast  = 0x17E9
	Riel            = 0x17DB // ៛
)

// Decode decodes the codepoint starting at s[i] and returns it with its
// encoded width in bytes. Truncated or malformed sequences decode to
// codepoint 0 with width 1.
func Decode(s string, i int) (rune, int) {
	c := s[i]
	if c < 0x80 {
		return rune(c), 1
	}
	switch {
	case c&0xE0 == 0xC0:
		if i+1 >= len(s) || s[i+1]&0xC0 != 0x80 {
			return 0, 1
		}
		return rune(c&0x1F)<<6 | rune(s[i+1]&0x3F), 2
	case c&0xF0 == 0xE0:
		if i+2 >= len(s) || s[i+1]&0xC0 != 0x80 || s[i+2]&0xC0 != 0x80 {
			return 0, 1
		}
		return rune(c&0x0F)<<12 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F), 3
	case c&0xF8 == 0xF0:
		if i+3 >= len(s) || s[i+1]&0xC0 != 0x80 || s[i+2]&0xC0 != 0x80 || s[i+3]&0xC0 != 0x80 {
			return 0, 1
		}
		return rune(c&0x07)<<18 | rune(s[i+1]&0x3F)<<12 | rune(s[i+2]&0x3F)<<6 | rune(s[i+3]&0x3F), 4
	}
	return 0, 1
}

// RuneWidth returns the number of bytes Decode would consume at s[i].
func RuneWidth(s string, i int) int {
	_, w := Decode(s, i)
	return w
}

// IsKhmer reports whether cp belongs to the Khmer blocks
// (U+1780-U+17FF main, U+19E0-U+19FF symbols).
func IsKhmer(cp rune) bool {
	return (cp >= 0x1780 && cp <= 0x17FF) || (cp >= 0x19E0 && cp <= 0x19FF)
}

// IsConsonant reports whether cp is a Khmer base consonant.
func IsConsonant(cp rune) bool {
	return cp >= ConsonantFirst && cp <= ConsonantLast
}

// IsBase reports whether cp can begin an orthographic cluster: a base
// consonant or an independent vowel.
func IsBase(cp rune) bool {
	return cp >= ConsonantFirst && cp <= IndepVowelLast
}

// IsRegister reports whether cp is a register shifter
// (U+17C9 Muusikatoan, U+17CA Triisap).
func IsRegister(cp rune) bool {
	return cp == 0x17C9 || cp == 0x17CA
}

// IsDepVowel reports whether cp is a dependent vowel.
func IsDepVowel(cp rune) bool {
	return cp >= DepVowelFirst && cp <= DepVowelLast
}

// IsSign reports whether cp is a sign or diacritic
// (U+17C6-U+17D1, U+17D3, U+17DD).
func IsSign(cp rune) bool {
	return (cp >= 0x17C6 && cp <= 0x17D1) || cp == 0x17D3 || cp == 0x17DD
}

// IsDigit reports whether cp is an ASCII or Khmer digit.
func IsDigit(cp rune) bool {
	return (cp >= '0' && cp <= '9') || (cp >= KhmerDigitFirst && cp <= KhmerDigitLast)
}

// IsCurrency reports whether cp is a currency symbol that may prefix a
// number group.
func IsCurrency(cp rune) bool {
	return cp == '$' || cp == Riel || cp == 0x20AC || cp == 0x00A3 || cp == 0x00A5
}

// IsSeparator reports whether cp terminates a token on its own: Khmer
// punctuation, ASCII punctuation and whitespace, guillemets, no-break
// space, U+02DD, the General Punctuation block, and the Currency Symbols
// block.
func IsSeparator(cp rune) bool {
	if cp >= 0x17D4 && cp <= Riel {
		return true
	}
	if cp < 0x80 {
		return asciiPunct(byte(cp)) || asciiSpace(byte(cp))
	}
	if cp == 0x00A0 || cp == 0x02DD {
		return true
	}
	if cp == 0x00AB || cp == 0x00BB {
		return true
	}
	if cp >= 0x2000 && cp <= 0x206F {
		return true
	}
	if cp >= 0x20A0 && cp <= 0x20CF {
		return true
	}
	return false
}

func asciiPunct(c byte) bool {
	switch {
	case c >= '!' && c <= '/':
		return true
	case c >= ':' && c <= '@':
		return true
	case c >= '[' && c <= '`':
		return true
	case c >= '{' && c <= '~':
		return true
	}
	return false
}

func asciiSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ClusterLen returns the byte length of the orthographic cluster starting
// at s[i]: a base codepoint followed by (COENG + consonant) pairs and
// dependent vowels or signs. A non-base start yields the width of that
// single codepoint.
func ClusterLen(s string, i int) int {
	n := len(s)
	if i >= n {
		return 0
	}
	cp, w := Decode(s, i)
	if !IsBase(cp) {
		return w
	}
	j := i + w
	for j < n {
		next, nw := Decode(s, j)
		if next == Coeng {
			if j+nw < n {
				sub, sw := Decode(s, j+nw)
				if IsConsonant(sub) {
					j += nw + sw
					continue
				}
			}
			break // trailing coeng
		}
		if (next >= DepVowelFirst && next <= 0x17D1) || next == 0x17D3 || next == 0x17DD {
			j += nw
			continue
		}
		break
	}
	return j - i
}

// NumberLen returns the byte length of the digit run starting at s[i],
// allowing interior single-character separators from {',', '.', ' '} when
// each is immediately followed by another digit. Returns 0 when s[i] does
// not start with a digit.
func NumberLen(s string, i int) int {
	n := len(s)
	cp, w := Decode(s, i)
	if !IsDigit(cp) {
		return 0
	}
	j := i + w
	for j < n {
		next, nw := Decode(s, j)
		if IsDigit(next) {
			j += nw
			continue
		}
		if next == ',' || next == '.' || next == ' ' {
			if j+nw < n {
				after, aw := Decode(s, j+nw)
				if IsDigit(after) {
					j += nw + aw
					continue
				}
			}
		}
		break
	}
	return j - i
}

// IsAcronymStart reports whether s[i] begins a cluster immediately
// followed by an ASCII dot.
func IsAcronymStart(s string, i int) bool {
	n := len(s)
	if i+1 >= n {
		return false
	}
	cp, _ := Decode(s, i)
	if !IsBase(cp) {
		return false
	}
	dot := i + ClusterLen(s, i)
	return dot < n && s[dot] == '.'
}

// AcronymLen returns the byte length of the maximal (cluster + '.')
// repetition starting at s[i].
func AcronymLen(s string, i int) int {
	n := len(s)
	j := i
	for j < n {
		cp, _ := Decode(s, j)
		if !IsBase(cp) {
			break
		}
		dot := j + ClusterLen(s, j)
		if dot < n && s[dot] == '.' {
			j = dot + 1
			continue
		}
		break
	}
	return j - i
}
