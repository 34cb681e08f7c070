package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	testhelpers "github.com/polkiloo/feedbackportal/internal/test"
)

func TestFeedbackUseCaseSubmitStampsTimestamp(t *testing.T) {
	repo := &testhelpers.FeedbackRepositoryStub{}
	uc := NewFeedbackUseCase(repo)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	client := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	saved, err := uc.Submit(context.Background(), model.Feedback{ID: 99, Rating: 4, Comment: "ok", Service: "delivery", Timestamp: client})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if saved.ID != 1 {
		t.Fatalf("expected store-assigned id 1, got %d", saved.ID)
	}
	if !saved.Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", saved.Timestamp, fixed)
	}
	if saved.Rating != 4 || saved.Comment != "ok" || saved.Service != "delivery" {
		t.Fatalf("fields not preserved: %+v", saved)
	}
}

func TestFeedbackUseCaseDefaultClockIsUTC(t *testing.T) {
	repo := &testhelpers.FeedbackRepositoryStub{}
	uc := NewFeedbackUseCase(repo)

	saved, err := uc.Submit(context.Background(), model.Feedback{Rating: 5})
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if saved.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be set")
	}
	if saved.Timestamp.Location() != time.UTC {
		t.Fatalf("expected UTC timestamp, got %v", saved.Timestamp.Location())
	}
}

func TestFeedbackUseCaseDefaultClockFitsTimestampColumn(t *testing.T) {
	uc := NewFeedbackUseCase(&testhelpers.FeedbackRepositoryStub{})

	for i := 0; i < 20; i++ {
		saved, err := uc.Submit(context.Background(), model.Feedback{Rating: 5})
		if err != nil {
			t.Fatalf("submit returned error: %v", err)
		}
		stored := *saved
		stored.Timestamp = saved.Timestamp.Truncate(time.Microsecond).In(time.FixedZone("UTC+3", 3*60*60)).UTC()
		if stored != *saved {
			t.Fatalf("submitted %s, stored %s: records differ",
				saved.Timestamp.Format(time.RFC3339Nano), stored.Timestamp.Format(time.RFC3339Nano))
		}
	}
}

func TestFeedbackUseCaseListIncludesSubmitted(t *testing.T) {
	repo := &testhelpers.FeedbackRepositoryStub{}
	uc := NewFeedbackUseCase(repo)
	ctx := context.Background()

	for _, rating := range []int{5, 3} {
		if _, err := uc.Submit(ctx, model.Feedback{Rating: rating}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	first, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(first) != 2 || first[0].Rating != 5 || first[1].Rating != 3 {
		t.Fatalf("unexpected list %+v", first)
	}

	second, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("second list returned error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("list not idempotent: %+v vs %+v", first, second)
	}
}

func TestFeedbackUseCasePropagatesStoreErrors(t *testing.T) {
	repo := &testhelpers.FeedbackRepositoryStub{Err: domainErrors.ErrStoreUnavailable}
	uc := NewFeedbackUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Submit(ctx, model.Feedback{Rating: 1}); !errors.Is(err, domainErrors.ErrStoreUnavailable) {
		t.Fatalf("submit: expected store unavailable, got %v", err)
	}
	if _, err := uc.List(ctx); !errors.Is(err, domainErrors.ErrStoreUnavailable) {
		t.Fatalf("list: expected store unavailable, got %v", err)
	}
}
