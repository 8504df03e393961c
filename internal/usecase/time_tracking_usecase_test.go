package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/usecase/interfaces"
	mock_interfaces "vehicle_acquisition/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memoryTracking is a compare-and-swap store keyed by case id.
type memoryTracking struct {
	mu      sync.Mutex
	records map[string]entities.TimeTracking
}

func newMemoryTracking() *memoryTracking {
	return &memoryTracking{records: map[string]entities.TimeTracking{}}
}

func (m *memoryTracking) GetByCaseID(_ context.Context, caseID string) (entities.TimeTracking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[caseID], nil
}

func (m *memoryTracking) Save(_ context.Context, t entities.TimeTracking, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.records[t.CaseID].Version != expectedVersion {
		return interfaces.ErrVersionConflict
	}
	m.records[t.CaseID] = t
	return nil
}

func ms(v int64) *int64 { return &v }

func record(stage string, total int64) RecordStageTimeInput {
	return RecordStageTimeInput{CaseID: "case-1", StageName: stage, StartTime: t0, EndTime: t0, TotalTime: ms(total)}
}

func TestTimeTrackingUseCase_RecordStageTime_Validation(t *testing.T) {
	uc := NewTimeTrackingUseCase(nil, 0)

	if _, err := uc.RecordStageTime(context.Background(), RecordStageTimeInput{StageName: "intake"}); !errors.Is(err, ErrInvalidCaseID) {
		t.Fatalf("expected ErrInvalidCaseID, got %v", err)
	}
	if _, err := uc.RecordStageTime(context.Background(), RecordStageTimeInput{CaseID: "case-1", StageName: " "}); !errors.Is(err, ErrInvalidStageName) {
		t.Fatalf("expected ErrInvalidStageName, got %v", err)
	}
	in := RecordStageTimeInput{CaseID: "case-1", StageName: "intake", StartTime: t0, EndTime: t0.Add(-time.Second)}
	if _, err := uc.RecordStageTime(context.Background(), in); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestTimeTrackingUseCase_RecordStageTime_ReplacesStageTotal(t *testing.T) {
	store := newMemoryTracking()
	uc := NewTimeTrackingUseCase(store, 0)
	ctx := context.Background()

	if _, err := uc.RecordStageTime(ctx, record("inspection", 1000)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	tt, err := uc.RecordStageTime(ctx, record("inspection", 500))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tt.TotalTime != 500 {
		t.Fatalf("expected total 500, got %d", tt.TotalTime)
	}
	if tt.StageTimes["inspection"].TotalTime != 500 {
		t.Fatalf("expected stage total 500, got %d", tt.StageTimes["inspection"].TotalTime)
	}
	if tt.Version != 2 {
		t.Fatalf("expected version 2, got %d", tt.Version)
	}
}

func TestTimeTrackingUseCase_RecordStageTime_TotalIsSumOfLatest(t *testing.T) {
	store := newMemoryTracking()
	uc := NewTimeTrackingUseCase(store, 0)
	ctx := context.Background()

	steps := []struct {
		stage string
		total int64
	}{
		{"intake", 300},
		{"inspection", 1200},
		{"intake", 100},
		{"paperwork", 50},
		{"inspection", 0},
		{"paperwork", 75},
	}
	latest := map[string]int64{}
	for _, s := range steps {
		tt, err := uc.RecordStageTime(ctx, record(s.stage, s.total))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		latest[s.stage] = s.total
		var want int64
		for _, v := range latest {
			want += v
		}
		if tt.TotalTime != want || tt.TotalTime != tt.SumStageTimes() {
			t.Fatalf("after %s=%d: total %d, want %d", s.stage, s.total, tt.TotalTime, want)
		}
	}
}

func TestTimeTrackingUseCase_RecordStageTime_ElapsedAndExtra(t *testing.T) {
	store := newMemoryTracking()
	uc := NewTimeTrackingUseCase(store, 0)

	in := RecordStageTimeInput{
		CaseID:    "case-1",
		StageName: "quotePreparation",
		StartTime: t0,
		EndTime:   t0.Add(2 * time.Minute),
		Extra:     map[string]any{"notes": "paused for lunch"},
	}
	tt, err := uc.RecordStageTime(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	st := tt.StageTimes["quotePreparation"]
	if st.TotalTime != 120000 || st.Extra["notes"] != "paused for lunch" {
		t.Fatalf("unexpected stage time: %+v", st)
	}
}

func TestTimeTrackingUseCase_RecordStageTime_ConcurrentWriters(t *testing.T) {
	store := newMemoryTracking()
	uc := NewTimeTrackingUseCase(store, 100)
	stages := []string{"intake", "scheduleInspection", "inspection", "quotePreparation", "offerDecision", "paperwork", "completion"}

	var wg sync.WaitGroup
	for i, s := range stages {
		wg.Add(1)
		go func(stage string, total int64) {
			defer wg.Done()
			if _, err := uc.RecordStageTime(context.Background(), record(stage, total)); err != nil {
				t.Errorf("stage %s: %v", stage, err)
			}
		}(s, int64(i+1)*100)
	}
	wg.Wait()

	tt, _ := store.GetByCaseID(context.Background(), "case-1")
	if tt.TotalTime != 2800 || tt.SumStageTimes() != 2800 {
		t.Fatalf("expected total 2800, got %d (sum %d)", tt.TotalTime, tt.SumStageTimes())
	}
}

func TestTimeTrackingUseCase_RecordStageTime_Retries(t *testing.T) {
	t.Run("retries on version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewTimeTrackingUseCase(repo, 3)

		stale := entities.TimeTracking{CaseID: "case-1", Version: 1, TotalTime: 10, StageTimes: map[string]entities.StageTime{"intake": {TotalTime: 10}}}
		fresh := entities.TimeTracking{CaseID: "case-1", Version: 2, TotalTime: 30, StageTimes: map[string]entities.StageTime{"intake": {TotalTime: 10}, "paperwork": {TotalTime: 20}}}
		gomock.InOrder(
			repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(stale, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(1)).Return(interfaces.ErrVersionConflict),
			repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(fresh, nil),
			repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(2)).Return(nil),
		)

		tt, err := uc.RecordStageTime(context.Background(), record("intake", 40))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if tt.TotalTime != 60 || tt.Version != 3 {
			t.Fatalf("unexpected record: %+v", tt)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewTimeTrackingUseCase(repo, 3)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.TimeTracking{}, nil).Times(3)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(0)).Return(interfaces.ErrVersionConflict).Times(3)

		_, err := uc.RecordStageTime(context.Background(), record("intake", 40))
		if !errors.Is(err, ErrTimeTrackingConflict) {
			t.Fatalf("expected ErrTimeTrackingConflict, got %v", err)
		}
	})

	t.Run("save error is not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITimeTrackingRepository(ctrl)
		uc := NewTimeTrackingUseCase(repo, 3)

		repo.EXPECT().GetByCaseID(gomock.Any(), "case-1").Return(entities.TimeTracking{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any(), int64(0)).Return(errors.New("db"))

		_, err := uc.RecordStageTime(context.Background(), record("intake", 40))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestApplyStageTimeDoesNotMutateExisting(t *testing.T) {
	existing := entities.TimeTracking{CaseID: "case-1", Version: 4, TotalTime: 10, StageTimes: map[string]entities.StageTime{"intake": {TotalTime: 10}}}
	next := applyStageTime(existing, "case-1", "intake", entities.StageTime{TotalTime: 3}, t0)

	if existing.StageTimes["intake"].TotalTime != 10 {
		t.Fatalf("existing record was modified")
	}
	if next.TotalTime != 3 || next.Version != 5 || !next.LastUpdated.Equal(t0) {
		t.Fatalf("unexpected next record: %+v", next)
	}
}
