package training

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service acknowledges training session submissions.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new training service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger, now: time.Now}
}

// SaveSession accepts a session submission. The payload is discarded; only
// the acknowledgement with a generated id is produced.
func (s *Service) SaveSession() *SessionResult {
	id := fmt.Sprintf("session_%d", s.now().Unix())
	s.logger.Info("Training session acknowledged", zap.String("session_id", id))

	return &SessionResult{
		Success:   true,
		SessionID: id,
		Message:   "Training session saved successfully",
	}
}
