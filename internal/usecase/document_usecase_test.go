package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vehicle_acquisition/internal/domain/documents"
	"vehicle_acquisition/internal/domain/entities"
	mock_interfaces "vehicle_acquisition/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type documentMocks struct {
	cases    *mock_interfaces.MockICaseRepository
	tracking *mock_interfaces.MockITimeTrackingRepository
	renderer *mock_interfaces.MockIDocumentRenderer
	storage  *mock_interfaces.MockIDocumentStorage
}

func newDocumentUseCase(ctrl *gomock.Controller) (*DocumentUseCase, documentMocks) {
	m := documentMocks{
		cases:    mock_interfaces.NewMockICaseRepository(ctrl),
		tracking: mock_interfaces.NewMockITimeTrackingRepository(ctrl),
		renderer: mock_interfaces.NewMockIDocumentRenderer(ctrl),
		storage:  mock_interfaces.NewMockIDocumentStorage(ctrl),
	}
	assembler := documents.NewAssembler(documents.Company{Name: "Acme Auto Buyers"}, documents.WithClock(fixedClock(t0)))
	uc := NewDocumentUseCase(m.cases, m.tracking, assembler, m.renderer, m.storage)
	uc.now = fixedClock(t0)
	return uc, m
}

func documentAggregate() entities.CaseAggregate {
	return entities.CaseAggregate{
		Case:     caseAt(entities.StageCompletion, t0),
		Customer: &entities.Customer{FirstName: "Jane", LastName: "Doe"},
		Vehicle:  &entities.Vehicle{Make: "Honda", Model: "Civic", TitleStatus: entities.TitleStatusClean},
	}
}

// memoryCases stores whole aggregates and applies MarkPDFGenerated to the
// stored copy, the way both repositories do.
type memoryCases struct {
	mu    sync.Mutex
	cases map[string]entities.CaseAggregate
}

func newMemoryCases(aggs ...entities.CaseAggregate) *memoryCases {
	m := &memoryCases{cases: map[string]entities.CaseAggregate{}}
	for _, a := range aggs {
		m.cases[a.Case.ID] = a
	}
	return m
}

func (m *memoryCases) Create(_ context.Context, agg entities.CaseAggregate) (entities.CaseAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cases[agg.Case.ID] = agg
	return agg, nil
}

func (m *memoryCases) GetAggregate(_ context.Context, id string) (entities.CaseAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cases[id], nil
}

func (m *memoryCases) UpdateWorkflow(_ context.Context, c entities.Case) (entities.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.cases[c.ID]
	if !ok {
		return entities.Case{}, nil
	}
	agg.Case = c
	m.cases[c.ID] = agg
	return c, nil
}

func (m *memoryCases) MarkPDFGenerated(_ context.Context, id string, activity entities.LastActivity) (entities.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agg, ok := m.cases[id]
	if !ok {
		return entities.Case{}, nil
	}
	at := activity.Timestamp
	agg.Case.Completion.PDFGenerated = true
	agg.Case.Completion.PDFGeneratedAt = &at
	agg.Case.LastActivity = activity
	agg.Case.UpdatedAt = at
	m.cases[id] = agg
	return agg.Case, nil
}

type storeFunc func(ctx context.Context, caseID, kind, contentType string, body []byte) (string, error)

func (f storeFunc) Store(ctx context.Context, caseID, kind, contentType string, body []byte) (string, error) {
	return f(ctx, caseID, kind, contentType, body)
}

func TestDocumentUseCase_Preview(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Preview(context.Background(), "case-1", "brochure")
		if !errors.Is(err, ErrInvalidDocumentKind) {
			t.Fatalf("expected ErrInvalidDocumentKind, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(entities.CaseAggregate{}, nil)

		_, err := uc.Preview(context.Background(), "case-1", "bill_of_sale")
		if !errors.Is(err, ErrCaseNotFound) {
			t.Fatalf("expected ErrCaseNotFound, got %v", err)
		}
	})

	t.Run("basic quote summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(documentAggregate(), nil)

		doc, err := uc.Preview(context.Background(), "case-1", "quote_summary_basic")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if doc.Kind != documents.KindQuoteSummaryBasic || len(doc.Sections) == 0 {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if doc.Sections[0].Title != documents.TitleVehicleIdentification {
			t.Fatalf("unexpected first section %q", doc.Sections[0].Title)
		}
	})

	t.Run("case summary loads time tracking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(documentAggregate(), nil)
		m.tracking.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.TimeTracking{CaseID: "case-1", TotalTime: 5400000}, nil)

		doc, err := uc.Preview(context.Background(), "case-1", "case_summary")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if doc.Kind != documents.KindCaseSummary {
			t.Fatalf("unexpected kind %s", doc.Kind)
		}
	})
}

func TestDocumentUseCase_Generate(t *testing.T) {
	t.Run("render failure is reported in the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(documentAggregate(), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))

		res, err := uc.Generate(context.Background(), "case-1", "bill_of_sale")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Success || res.URL != "" || res.Error == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("store failure is reported in the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(documentAggregate(), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.renderer.EXPECT().ContentType().Return("application/pdf")
		m.storage.EXPECT().Store(gomock.Any(), "case-1", "bill_of_sale", "application/pdf", []byte("%PDF")).Return("", errors.New("s3"))

		res, err := uc.Generate(context.Background(), "case-1", "bill_of_sale")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Success || res.Error == "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("complete package marks pdf generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(documentAggregate(), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc documents.Document) ([]byte, error) {
				if doc.Kind != documents.KindCompletePackage {
					t.Fatalf("unexpected kind %s", doc.Kind)
				}
				return []byte("%PDF"), nil
			},
		)
		m.renderer.EXPECT().ContentType().Return("application/pdf")
		m.storage.EXPECT().Store(gomock.Any(), "case-1", "complete_package", "application/pdf", gomock.Any()).Return("https://docs.example/p.pdf", nil)
		m.cases.EXPECT().MarkPDFGenerated(gomock.Any(), "case-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, activity entities.LastActivity) (entities.Case, error) {
				if !activity.Timestamp.Equal(t0) || activity.Description == "" {
					t.Fatalf("unexpected activity %+v", activity)
				}
				return entities.Case{ID: "case-1"}, nil
			},
		)

		res, err := uc.Generate(context.Background(), "case-1", "complete_package")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Success || res.URL != "https://docs.example/p.pdf" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("other kinds leave completion untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDocumentUseCase(ctrl)

		m.cases.EXPECT().GetAggregate(gomock.Any(), "case-1").Return(documentAggregate(), nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		m.renderer.EXPECT().ContentType().Return("application/pdf")
		m.storage.EXPECT().Store(gomock.Any(), "case-1", "quote_summary_analytic", "application/pdf", gomock.Any()).Return("https://docs.example/q.pdf", nil)

		res, err := uc.Generate(context.Background(), "case-1", "quote_summary_analytic")
		if err != nil || !res.Success {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

func TestDocumentUseCase_GenerateKeepsConcurrentStageChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agg := documentAggregate()
	agg.Case = caseAt(entities.StagePaperwork, t0)
	repo := newMemoryCases(agg)
	cases := NewCaseUseCase(repo, nil)
	cases.now = fixedClock(t0.Add(time.Minute))

	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
	renderer.EXPECT().ContentType().Return("application/pdf")

	storage := storeFunc(func(ctx context.Context, caseID, _, _ string, _ []byte) (string, error) {
		if _, err := cases.AdvanceStage(ctx, caseID, int(entities.StageCompletion)); err != nil {
			t.Fatalf("advance during upload: %v", err)
		}
		return "https://docs.example/p.pdf", nil
	})

	assembler := documents.NewAssembler(documents.Company{Name: "Acme Auto Buyers"}, documents.WithClock(fixedClock(t0)))
	uc := NewDocumentUseCase(repo, nil, assembler, renderer, storage)
	uc.now = fixedClock(t0.Add(2 * time.Minute))

	res, err := uc.Generate(context.Background(), "case-1", "complete_package")
	if err != nil || !res.Success {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}

	got, _ := repo.GetAggregate(context.Background(), "case-1")
	c := got.Case
	if c.CurrentStage != entities.StageCompletion {
		t.Fatalf("expected stage 7 to survive generation, got %d", c.CurrentStage)
	}
	if c.StatusOf(entities.StagePaperwork) != entities.StageStatusComplete || c.StatusOf(entities.StageCompletion) != entities.StageStatusActive {
		t.Fatalf("unexpected statuses: %v", c.StageStatuses)
	}
	if !c.Completion.PDFGenerated || c.Completion.PDFGeneratedAt == nil {
		t.Fatalf("expected pdf flags, got %+v", c.Completion)
	}
}
