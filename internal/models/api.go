package models

// ParseRequest is the body accepted by POST /api/v1/parse.
type ParseRequest struct {
	Input string `json:"input"`
}

// ParseResponse is the success envelope returned by the parse endpoint and
// the CLI's --json output.
type ParseResponse struct {
	Success  bool   `json:"success"`
	Intent   Intent `json:"intent"`
	RawInput string `json:"raw_input"`
	ParsedAt string `json:"parsed_at"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
