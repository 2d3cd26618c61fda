package password

import "strings"

// Label is the discrete strength tier derived from a score.
type Label string

const (
	LabelUnscored Label = "unscored"
	LabelWeak     Label = "weak"
	LabelFair     Label = "fair"
	LabelGood     Label = "good"
	LabelStrong   Label = "strong"
)

// Strength is the result of analyzing one password string.
type Strength struct {
	Score       int
	Label       Label
	LengthOK    bool
	DiversityOK bool
}

// Analyze scores a password from its text alone. Four independent checks each
// contribute 25 points: length >= 12, at least 3 character classes present,
// length >= 16, and all 4 classes present. The empty string yields the zero
// result with the unscored label.
//
// Class membership is re-derived from the string itself; symbols count only
// when they appear in the fixed symbol alphabet.
func Analyze(pw string) Strength {
	if pw == "" {
		return Strength{Label: LabelUnscored}
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(symbolChars, r):
			hasSymbol = true
		}
	}

	classCount := 0
	for _, present := range []bool{hasUpper, hasLower, hasDigit, hasSymbol} {
		if present {
			classCount++
		}
	}

	s := Strength{
		LengthOK:    len(pw) >= 12,
		DiversityOK: classCount >= 3,
	}

	if s.LengthOK {
		s.Score += 25
	}
	if s.DiversityOK {
		s.Score += 25
	}
	if len(pw) >= 16 {
		s.Score += 25
	}
	if classCount == 4 {
		s.Score += 25
	}

	s.Label = labelFor(s.Score)
	return s
}

func labelFor(score int) Label {
	switch {
	case score < 25:
		return LabelWeak
	case score < 50:
		return LabelFair
	case score < 75:
		return LabelGood
	default:
		return LabelStrong
	}
}
