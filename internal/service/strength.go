package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// StrengthService handles strength analysis of caller-supplied passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Analyze scores the given password. It never fails; an empty password yields
// the unscored zero result.
func (s *StrengthService) Analyze(req model.AnalyzeRequest) model.StrengthResponse {
	return strengthResponse(password.Analyze(req.Password))
}

func strengthResponse(st password.Strength) model.StrengthResponse {
	return model.StrengthResponse{
		Score:          st.Score,
		Label:          string(st.Label),
		LengthCheck:    st.LengthOK,
		DiversityCheck: st.DiversityOK,
	}
}
