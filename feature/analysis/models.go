package analysis

// AnalysisResult acknowledges a submitted AI analysis. The id is returned
// to the client but nothing backs it.
type AnalysisResult struct {
	Success    bool   `json:"success"`
	AnalysisID string `json:"analysisId"`
	Message    string `json:"message"`
}
