package output

import (
	"encoding/json"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

// JSONFormatter serializes the report plus its computed analytics as
// pretty-printed JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	payload := struct {
		*domain.ProjectionReport
		Analysis *calculation.ProjectionAnalysis `json:"analysis,omitempty"`
	}{ProjectionReport: report}

	if len(report.Records) > 0 {
		analysis, err := calculation.AnalyzeProjection(report.Records)
		if err != nil {
			return nil, err
		}
		payload.Analysis = analysis
	}

	return json.MarshalIndent(payload, "", "  ")
}
