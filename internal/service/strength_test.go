package service

import (
	"testing"

	"github.com/passforge/passforge-go/internal/model"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name string
		pw   string
		want model.StrengthResponse
	}{
		{
			name: "empty password is unscored",
			pw:   "",
			want: model.StrengthResponse{Score: 0, Label: "unscored"},
		},
		{
			name: "weak password",
			pw:   "abc",
			want: model.StrengthResponse{Score: 0, Label: "weak"},
		},
		{
			name: "fair password",
			pw:   "Abcdefghijkl",
			want: model.StrengthResponse{Score: 25, Label: "fair", LengthCheck: true},
		},
		{
			name: "strong password",
			pw:   "Ab3!Ab3!Ab3!Ab3!",
			want: model.StrengthResponse{Score: 100, Label: "strong", LengthCheck: true, DiversityCheck: true},
		},
	}

	svc := NewStrengthService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Analyze(model.AnalyzeRequest{Password: tt.pw})
			if got != tt.want {
				t.Errorf("Analyze(%q) = %+v, want %+v", tt.pw, got, tt.want)
			}
		})
	}
}
