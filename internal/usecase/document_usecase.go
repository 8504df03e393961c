package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"vehicle_acquisition/internal/domain/documents"
	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase/interfaces"
)

var (
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrRenderFailed        = errors.New("document rendering failed")
	ErrStoreFailed         = errors.New("document storage failed")
)

// GenerationResult is the outcome of a generate request. Rendering and
// storage failures are reported here instead of as errors.
type GenerationResult struct {
	Success bool
	URL     string
	Error   string
}

// IDocumentUseCase exposes document operations.
//
//   - GET  /cases/{id}/documents/{kind} => Preview()
//   - POST /cases/{id}/documents/{kind} => Generate()
//
// Generating the complete package successfully marks the case completion
// checklist as having its PDF generated.

type IDocumentUseCase interface {
	Preview(ctx context.Context, caseID, kind string) (documents.Document, error)
	Generate(ctx context.Context, caseID, kind string) (GenerationResult, error)
}

type DocumentUseCase struct {
	cases     interfaces.ICaseRepository
	tracking  interfaces.ITimeTrackingRepository
	assembler *documents.Assembler
	renderer  interfaces.IDocumentRenderer
	storage   interfaces.IDocumentStorage
	now       func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	cases interfaces.ICaseRepository,
	tracking interfaces.ITimeTrackingRepository,
	assembler *documents.Assembler,
	renderer interfaces.IDocumentRenderer,
	storage interfaces.IDocumentStorage,
) *DocumentUseCase {
	return &DocumentUseCase{
		cases:     cases,
		tracking:  tracking,
		assembler: assembler,
		renderer:  renderer,
		storage:   storage,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *DocumentUseCase) Preview(ctx context.Context, caseID, kind string) (documents.Document, error) {
	k, agg, err := u.prepare(ctx, caseID, kind)
	if err != nil {
		return documents.Document{}, err
	}
	return u.assemble(k, agg)
}

func (u *DocumentUseCase) Generate(ctx context.Context, caseID, kind string) (GenerationResult, error) {
	k, agg, err := u.prepare(ctx, caseID, kind)
	if err != nil {
		return GenerationResult{}, err
	}
	doc, err := u.assemble(k, agg)
	if err != nil {
		return GenerationResult{}, err
	}

	if u.renderer == nil || u.storage == nil {
		return GenerationResult{Success: false, Error: "document pipeline not configured"}, nil
	}

	body, err := u.renderer.Render(ctx, doc)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrRenderFailed, err)
		log.Printf("[document][usecase] render failed case_id=%s kind=%s err=%v", agg.Case.ID, k, err)
		return GenerationResult{Success: false, Error: err.Error()}, nil
	}

	url, err := u.storage.Store(ctx, agg.Case.ID, string(k), u.renderer.ContentType(), body)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrStoreFailed, err)
		log.Printf("[document][usecase] store failed case_id=%s kind=%s err=%v", agg.Case.ID, k, err)
		return GenerationResult{Success: false, Error: err.Error()}, nil
	}
	log.Printf("[document][usecase] generated case_id=%s kind=%s bytes=%d", agg.Case.ID, k, len(body))

	if k == documents.KindCompletePackage {
		u.markPDFGenerated(ctx, agg.Case.ID)
	}
	return GenerationResult{Success: true, URL: url}, nil
}

func (u *DocumentUseCase) prepare(ctx context.Context, caseID, kind string) (documents.Kind, entities.CaseAggregate, error) {
	k, err := documents.ParseKind(kind)
	if err != nil {
		return "", entities.CaseAggregate{}, ErrInvalidDocumentKind
	}

	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return "", entities.CaseAggregate{}, ErrInvalidCaseID
	}
	agg, err := u.cases.GetAggregate(ctx, caseID)
	if err != nil {
		return "", entities.CaseAggregate{}, err
	}
	if agg.Case.ID == "" {
		return "", entities.CaseAggregate{}, ErrCaseNotFound
	}

	if u.tracking != nil && k == documents.KindCaseSummary {
		tt, err := u.tracking.GetByCaseID(ctx, caseID)
		if err != nil {
			log.Printf("[document][usecase] time tracking unavailable case_id=%s err=%v", caseID, err)
		} else if tt.CaseID != "" {
			agg.Tracking = &tt
		}
	}
	return k, agg, nil
}

func (u *DocumentUseCase) assemble(k documents.Kind, agg entities.CaseAggregate) (documents.Document, error) {
	doc, err := u.assembler.Assemble(k, agg)
	if errors.Is(err, documents.ErrUnknownKind) {
		return documents.Document{}, ErrInvalidDocumentKind
	}
	return doc, err
}

// markPDFGenerated writes only the pdf flags. The case read before rendering
// may be stale by now and must not be written back.
func (u *DocumentUseCase) markPDFGenerated(ctx context.Context, caseID string) {
	activity := entities.LastActivity{Description: "Complete package generated", Timestamp: u.now()}
	if _, err := u.cases.MarkPDFGenerated(ctx, caseID, activity); err != nil {
		log.Printf("[document][usecase] completion flag not saved case_id=%s err=%v", caseID, err)
	}
}
