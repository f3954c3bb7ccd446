package request

// RunToolRequest carries the labeled inputs a tool form collects plus the
// active UI language ("ar" or "en"); the generated output must match it.

type RunToolRequest struct {
	Inputs   map[string]string `json:"inputs" binding:"required"`
	Language string            `json:"language"`
}
