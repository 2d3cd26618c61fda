package service

import (
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != DefaultLength {
		t.Errorf("expected length %d, got %d", DefaultLength, resp.Length)
	}
	if len(resp.Password) != DefaultLength {
		t.Errorf("expected password length %d, got %d", DefaultLength, len(resp.Password))
	}
	if resp.Strength.Score != 100 || resp.Strength.Label != "strong" {
		t.Errorf("expected default password to analyze as 100/strong, got %d/%s",
			resp.Strength.Score, resp.Strength.Label)
	}
}

func TestGenerate_CustomClasses(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_StrengthMatchesPassword(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := password.Analyze(resp.Password)
	if resp.Strength.Score != want.Score ||
		resp.Strength.Label != string(want.Label) ||
		resp.Strength.LengthCheck != want.LengthOK ||
		resp.Strength.DiversityCheck != want.DiversityOK {
		t.Errorf("strength %+v does not match re-analysis %+v of %q",
			resp.Strength, want, resp.Password)
	}
}

func TestGenerate_LengthBelowMinimum(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, ErrLengthOutOfRange) {
		t.Fatalf("expected ErrLengthOutOfRange, got %v", err)
	}
}

func TestGenerate_LengthAboveMaximum(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 51})
	if !errors.Is(err, ErrLengthOutOfRange) {
		t.Fatalf("expected ErrLengthOutOfRange, got %v", err)
	}
}

func TestGenerate_MinimumLength(t *testing.T) {
	svc := NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{Length: MinLength})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != MinLength {
		t.Errorf("expected length %d, got %d", MinLength, resp.Length)
	}
}

func TestGenerate_NoClassesSelected(t *testing.T) {
	svc := NewGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{
		Length:    16,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Digits:    boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if !errors.Is(err, password.ErrNoClassSelected) {
		t.Fatalf("expected ErrNoClassSelected, got %v", err)
	}
}
