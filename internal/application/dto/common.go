package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse estado do backend de dados exposto em /health.
type StatusResponse struct {
	Status     string `json:"status"`
	Mode       string `json:"mode"` // remote | local
	Connected  bool   `json:"connected"`
	UsingLocal bool   `json:"using_local"`
}
