package response

import (
	"invoice-dashboard/internal/usecase/commands"
)

type ActionStateResponse struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message,omitempty"`
}

func FromActionState(s commands.ActionState) *ActionStateResponse {
	return &ActionStateResponse{
		Errors:  s.Errors,
		Message: s.Message,
	}
}

type LoginPageResponse struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}
