package interfaces

import (
	"context"
	"vehicle_acquisition/internal/domain/documents"
)

// IDocumentRenderer turns a document model into a fully materialized binary.
// Render returns only after the output is complete.
type IDocumentRenderer interface {
	Render(ctx context.Context, doc documents.Document) ([]byte, error)
	ContentType() string
}
