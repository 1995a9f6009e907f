package lexer

const utf8RuneSelf = 0x80

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b == '$'
}

// isBaseChar reports whether b introduces a based-literal digit set after
// an apostrophe: binary, octal, decimal, or hexadecimal.
func isBaseChar(b byte) bool {
	switch b {
	case 'b', 'B', 'o', 'O', 'd', 'D', 'h', 'H':
		return true
	default:
		return false
	}
}

// isUnsizedDigit reports whether b is a valid lone digit after an
// apostrophe ('0, '1, 'x, 'z fill literals).
func isUnsizedDigit(b byte) bool {
	switch b {
	case '0', '1', 'x', 'X', 'z', 'Z':
		return true
	default:
		return false
	}
}
