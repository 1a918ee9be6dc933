package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/avoleti/incomehelper/internal/calculation"
	"github.com/avoleti/incomehelper/internal/domain"
)

// HTMLFormatter produces a standalone styled HTML report.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
}).Parse(htmlTemplateSource))

func (HTMLFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var analysis *calculation.ProjectionAnalysis
	if len(report.Records) > 0 {
		a, err := calculation.AnalyzeProjection(report.Records)
		if err != nil {
			return nil, err
		}
		analysis = a
	}

	data := struct {
		*domain.ProjectionReport
		Analysis *calculation.ProjectionAnalysis
	}{report, analysis}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
