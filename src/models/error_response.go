package models

// ErrorResponse standard envelope for error replies.
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP Status Code
	Message string `json:"message"` // what precondition failed, so staff can correct input
}

// SuccessResponse standard envelope for data replies.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
