package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrLengthTooShort     = errors.New("password length must be at least 1")
	ErrNoClassSelected    = errors.New("at least one character class must be selected")
	ErrLengthInsufficient = errors.New("password length must be at least the number of selected character classes")
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
)

// Config selects the length and character classes for one generation call.
type Config struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// DefaultConfig returns 16 characters with all classes enabled.
func DefaultConfig() Config {
	return Config{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// enabled returns the selected classes in precedence order
// (upper, lower, digit, symbol). The final shuffle makes the order
// irrelevant to the output distribution.
func (c Config) enabled() []Class {
	var classes []Class
	if c.Uppercase {
		classes = append(classes, ClassUpper)
	}
	if c.Lowercase {
		classes = append(classes, ClassLower)
	}
	if c.Digits {
		classes = append(classes, ClassDigit)
	}
	if c.Symbols {
		classes = append(classes, ClassSymbol)
	}
	return classes
}

// Generate creates a random password from the enabled classes using crypto/rand.
// Every enabled class contributes at least one character. Configs where Length
// is smaller than the number of enabled classes are rejected rather than
// silently dropping the coverage guarantee.
//
// Generation runs in two separate phases: guaranteed coverage draws followed by
// pool fill, then a Fisher-Yates shuffle so the coverage characters do not
// cluster at the front of the output.
func Generate(cfg Config) (string, error) {
	if cfg.Length < 1 {
		return "", ErrLengthTooShort
	}

	classes := cfg.enabled()
	if len(classes) == 0 {
		return "", ErrNoClassSelected
	}
	if cfg.Length < len(classes) {
		return "", ErrLengthInsufficient
	}

	var pool string
	for _, cl := range classes {
		pool += cl.Alphabet()
	}

	result := make([]byte, cfg.Length)

	// One guaranteed character per enabled class.
	for i, cl := range classes {
		ch, err := randChar(cl.Alphabet())
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the combined pool.
	for i := len(classes); i < cfg.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks one character from charset. crypto/rand.Int rejection-samples
// internally, so the draw is uniform for any charset size.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
