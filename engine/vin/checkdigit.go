package vin

// transliteration maps each VIN character to its check-digit value.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

var weights = [Length]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// ComputeCheckDigit returns the check digit position 9 should hold for v:
// '0'-'9', or 'X' when the weighted sum leaves a remainder of 10.
func ComputeCheckDigit(v VIN) byte {
	sum := 0
	for i := 0; i < Length; i++ {
		c := v[i]
		val := 0
		if c >= '0' && c <= '9' {
			val = int(c - '0')
		} else {
			val = transliteration[c]
		}
		sum += val * weights[i]
	}
	rem := sum % 11
	if rem == 10 {
		return 'X'
	}
	return byte('0' + rem)
}

// CheckDigitValid reports whether position 9 matches the computed check
// digit. Only North American VINs are required to carry one, so a mismatch
// is informational.
func (v VIN) CheckDigitValid() bool {
	return v.CheckDigit() == ComputeCheckDigit(v)
}
