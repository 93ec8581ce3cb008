package report

import "context"

// ReportService buckets time entries into calendar periods and builds
// the chart series and employee summary.
type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (Report, error)
}
