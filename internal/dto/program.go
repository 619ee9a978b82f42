package dto

type ProgramRequest struct {
	// Code is assembly text, one instruction per line.
	Code string `json:"code" example:"PUSH 1\nPUSH 0\nAND\nPRINT"`
}

type ProgramResponse struct {
	Results []bool   `json:"results"`
	Output  []string `json:"output"`
}
