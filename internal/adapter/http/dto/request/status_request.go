package request

// StatusRequest is the body of PATCH /<module>/:id/status. The value is parsed
// against the module's status set by the handler.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
