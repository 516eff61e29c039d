package training

// SessionResult acknowledges a submitted training session. The id is
// returned to the client but nothing backs it.
type SessionResult struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}
