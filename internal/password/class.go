package password

// Class identifies one of the four character classes a password can draw from.
type Class int

const (
	ClassUpper Class = iota
	ClassLower
	ClassDigit
	ClassSymbol
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Alphabet returns the fixed alphabet bound to the class.
func (c Class) Alphabet() string {
	switch c {
	case ClassUpper:
		return upperChars
	case ClassLower:
		return lowerChars
	case ClassDigit:
		return digitChars
	case ClassSymbol:
		return symbolChars
	default:
		return ""
	}
}

func (c Class) String() string {
	switch c {
	case ClassUpper:
		return "uppercase"
	case ClassLower:
		return "lowercase"
	case ClassDigit:
		return "digits"
	case ClassSymbol:
		return "symbols"
	default:
		return "unknown"
	}
}
