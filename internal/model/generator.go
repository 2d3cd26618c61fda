package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response, including the
// strength analysis of the generated password.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// AnalyzeRequest represents a strength analysis request for a caller-supplied password.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// StrengthResponse represents the result of a strength analysis.
type StrengthResponse struct {
	Score          int    `json:"score"`
	Label          string `json:"label"`
	LengthCheck    bool   `json:"length_check"`
	DiversityCheck bool   `json:"diversity_check"`
}
