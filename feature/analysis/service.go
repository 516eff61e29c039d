package analysis

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Service acknowledges AI analysis submissions.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new analysis service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger, now: time.Now}
}

// SaveAnalysis accepts an analysis submission. The payload is discarded;
// only the acknowledgement with a generated id is produced.
func (s *Service) SaveAnalysis() *AnalysisResult {
	id := fmt.Sprintf("analysis_%d", s.now().Unix())
	s.logger.Info("AI analysis acknowledged", zap.String("analysis_id", id))

	return &AnalysisResult{
		Success:    true,
		AnalysisID: id,
		Message:    "AI analysis saved successfully",
	}
}
