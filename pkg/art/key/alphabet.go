package key

// ToAlphabet maps a translated key octet (the output of Xlat, or the
// 0x00 separator) onto a dense index in [0, 37] usable as a Node38 slot,
// and reports whether o falls inside the restricted hostname alphabet
// (separator, '-', '0'-'9', 'a'-'z').
//
// The ranges below operate on already-translated octets, so they are
// shifted relative to the ASCII ranges they originated from: Xlat maps
// 'a'-'z' (0x61-0x7A) to 0x48-0x61, '0'-'9' (0x30-0x39) to 0x31-0x3A,
// and '-' (0x2D) to 0x2E.
func ToAlphabet(o byte) (idx byte, ok bool) {
	switch {
	case o == 0x00:
		return 0, true
	case o == 0x2E:
		return 1, true
	case o >= 0x31 && o <= 0x3A:
		return o - 0x2F, true // '0'-'9' -> 2..11
	case o >= 0x48 && o <= 0x61:
		return o - 0x3C, true // 'a'-'z' -> 12..37
	default:
		return 0, false
	}
}

// FromAlphabet is the inverse of ToAlphabet.
func FromAlphabet(idx byte) (o byte, ok bool) {
	switch {
	case idx == 0:
		return 0x00, true
	case idx == 1:
		return 0x2E, true
	case idx >= 2 && idx <= 11:
		return idx + 0x2F, true
	case idx >= 12 && idx <= 37:
		return idx + 0x3C, true
	default:
		return 0, false
	}
}
