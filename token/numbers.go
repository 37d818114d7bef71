package token

// IsNumber reports whether s is, in its entirety, a numeric literal in the
// JSON number grammar, and whether it has a decimal point.
func IsNumber(s string) (ok, isFloat bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := asciiDigits(s[i:])
	if digits == 0 {
		return false, false
	}
	if digits > 1 && s[i] == '0' {
		return false, false
	}
	i += digits
	f := fract(s[i:])
	i += f
	e := exp(s[i:])
	i += e
	if i != len(s) {
		return false, false
	}
	return true, f != 0
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d string) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	// . must be followed by 1 or more digits rfc 7159
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
