package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/domain/model"
	"github.com/polkiloo/feedbackportal/internal/usecase"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := New().Users()

	_, err := repo.FindByEmail(ctx, "a@b.com")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)

	first, err := repo.Save(ctx, model.User{Email: "a@b.com", Password: "enc-1", Name: "Ann"})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)

	second, err := repo.Save(ctx, model.User{Email: "a@b.com", Password: "enc-2"})
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, first, found, "earliest record wins on duplicate email")

	found.Password = "mutated"
	again, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, "enc-1", again.Password)
}

func TestFeedbackRepository(t *testing.T) {
	ctx := context.Background()
	repo := New().Feedbacks()

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)

	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	saved, err := repo.Save(ctx, model.Feedback{Rating: 5, Comment: "great", Service: "support", Timestamp: ts})
	require.NoError(t, err)
	require.Equal(t, int64(1), saved.ID)

	items, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Feedback{*saved}, items)

	items[0].Comment = "changed"
	again, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, "great", again[0].Comment)
}

func TestConcurrentSavesAssignUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := New().Feedbacks()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Save(ctx, model.Feedback{Rating: 1})
		}()
	}
	wg.Wait()

	items, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 50)
	seen := make(map[int64]bool)
	for _, item := range items {
		require.False(t, seen[item.ID])
		seen[item.ID] = true
	}
}

func TestStorageLifecycle(t *testing.T) {
	s := New()
	require.NoError(t, s.HealthCheck(context.Background()))
	s.Close()
}

func TestSubmittedFeedbackMatchesListedRecord(t *testing.T) {
	storage := New()
	uc := usecase.NewFeedbackUseCase(storage.Feedbacks())
	ctx := context.Background()

	saved, err := uc.Submit(ctx, model.Feedback{Rating: 4, Comment: "quick", Service: "delivery"})
	require.NoError(t, err)

	items, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0] == *saved, "listed %+v differs from submitted %+v", items[0], *saved)
}
