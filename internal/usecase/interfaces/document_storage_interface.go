package interfaces

import "context"

// IDocumentStorage stores rendered documents and returns a URL to fetch them.
type IDocumentStorage interface {
	Store(ctx context.Context, caseID, kind, contentType string, body []byte) (url string, err error)
}
