package vin

import "time"

// yearCodes lists the 30 model-year codes in cycle order. Index 0 is 1980
// and again 2010. U, Z and 0 are never year codes.
const yearCodes = "ABCDEFGHJKLMNPRSTVWXY123456789"

const (
	firstCycleStart = 1980
	cycleLength     = 30
)

// YearDecoder maps the position-10 code to a calendar year. Each code is
// shared by two years 30 apart; the later one is chosen unless it lies in
// the future relative to the decoder's clock.
type YearDecoder struct {
	now func() time.Time
}

// NewYearDecoder returns a decoder using now as its clock. A nil now means
// time.Now.
func NewYearDecoder(now func() time.Time) YearDecoder {
	if now == nil {
		now = time.Now
	}
	return YearDecoder{now: now}
}

// Candidates returns both years a code can stand for.
func Candidates(code byte) (earlier, later int, ok bool) {
	if code >= 'a' && code <= 'z' {
		code -= 'a' - 'A'
	}
	for i := 0; i < len(yearCodes); i++ {
		if yearCodes[i] == code {
			earlier = firstCycleStart + i
			return earlier, earlier + cycleLength, true
		}
	}
	return 0, 0, false
}

// Decode resolves code to a single year. ok is false for characters that are
// not model-year codes.
func (d YearDecoder) Decode(code byte) (year int, ok bool) {
	earlier, later, ok := Candidates(code)
	if !ok {
		return 0, false
	}
	now := d.now
	if now == nil {
		now = time.Now
	}
	if later <= now().Year() {
		return later, true
	}
	return earlier, true
}

// DecodeYear decodes code against the wall clock.
func DecodeYear(code byte) (int, bool) {
	return NewYearDecoder(nil).Decode(code)
}
