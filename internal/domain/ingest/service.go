package ingest

import "context"

// IngestService applies batches of device punch rows to attendance
// records.
type IngestService interface {
	// Ingest merges the rows into stored records, row by row. Bad rows
	// are reported in the result, not returned as an error.
	Ingest(ctx context.Context, req IngestRequest) (IngestResult, error)
}
