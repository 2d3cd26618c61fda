package service

import (
	"errors"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// Caller-facing length bounds. The core generator accepts any length >= 1;
// this range is the one exposed to API and CLI users.
const (
	MinLength     = 4
	MaxLength     = 50
	DefaultLength = 16
)

var ErrLengthOutOfRange = errors.New("password length must be between 4 and 50")

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate produces a password based on the given request and analyzes it.
// A zero length defaults to DefaultLength; class flags default to enabled.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := password.Config{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Digits, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if cfg.Length == 0 {
		cfg.Length = DefaultLength
	}
	if cfg.Length < MinLength || cfg.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthOutOfRange
	}

	pw, err := password.Generate(cfg)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
		Strength: strengthResponse(password.Analyze(pw)),
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
