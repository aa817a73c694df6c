package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/memory-match-cli/internal/domain"
	"github.com/bnema/memory-match-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResultServiceRecordsFirstResult(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("", domain.ErrKeyNotFound)
	store.EXPECT().Set(mockAnyContext(), BestMovesKey, "20").Return(nil)
	store.EXPECT().Set(mockAnyContext(), BestTimeKey, "1,2,3").Return(nil)

	outcome, err := service.RecordIfBest(context.Background(), 20, domain.TimeSnapshot{Minutes: 1, Seconds: 2, Hundredths: 3})
	require.NoError(t, err)
	assert.True(t, outcome.NewRecord)
	assert.Nil(t, outcome.Previous)
}

func TestResultServiceKeepsBetterStoredResult(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("20", nil)
	store.EXPECT().Get(mockAnyContext(), BestTimeKey).Return("0,40,0", nil)

	outcome, err := service.RecordIfBest(context.Background(), 25, domain.TimeSnapshot{Seconds: 10})
	require.NoError(t, err)
	assert.False(t, outcome.NewRecord)
	assert.Equal(t, &domain.BestResult{Moves: 20, Time: domain.TimeSnapshot{Seconds: 40}}, outcome.Previous)
}

func TestResultServiceTiePolicy(t *testing.T) {
	tests := []struct {
		name      string
		time      domain.TimeSnapshot
		newRecord bool
	}{
		{name: "faster time replaces", time: domain.TimeSnapshot{Seconds: 39, Hundredths: 99}, newRecord: true},
		{name: "same time keeps", time: domain.TimeSnapshot{Seconds: 40}},
		{name: "slower time keeps", time: domain.TimeSnapshot{Minutes: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockKeyValueStore(t)
			service := NewResultService(store, nil)

			store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("20", nil)
			store.EXPECT().Get(mockAnyContext(), BestTimeKey).Return("0,40,0", nil)
			if tt.newRecord {
				store.EXPECT().Set(mockAnyContext(), BestMovesKey, "20").Return(nil)
				store.EXPECT().Set(mockAnyContext(), BestTimeKey, tt.time.Encode()).Return(nil)
			}

			outcome, err := service.RecordIfBest(context.Background(), 20, tt.time)
			require.NoError(t, err)
			assert.Equal(t, tt.newRecord, outcome.NewRecord)
		})
	}
}

func TestResultServiceTreatsCorruptMovesAsAbsent(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("lots", nil)

	best, err := service.Best(context.Background())
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestResultServiceBestWithoutTime(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("14", nil)
	store.EXPECT().Get(mockAnyContext(), BestTimeKey).Return("", domain.ErrKeyNotFound)

	best, err := service.Best(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.BestResult{Moves: 14}, best)
}

func TestResultServiceReturnsStoreReadError(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	readErr := errors.New("disk on fire")
	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("", readErr)

	_, err := service.RecordIfBest(context.Background(), 10, domain.TimeSnapshot{})
	require.ErrorIs(t, err, readErr)
}

func TestResultServiceRollsBackMovesWhenTimeWriteFails(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	writeErr := errors.New("write failed")
	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("20", nil)
	store.EXPECT().Get(mockAnyContext(), BestTimeKey).Return("0,40,0", nil)
	store.EXPECT().Set(mockAnyContext(), BestMovesKey, "15").Return(nil).Once()
	store.EXPECT().Set(mockAnyContext(), BestTimeKey, "0,30,0").Return(writeErr)
	store.EXPECT().Set(mockAnyContext(), BestMovesKey, "20").Return(nil).Once()

	outcome, err := service.RecordIfBest(context.Background(), 15, domain.TimeSnapshot{Seconds: 30})
	require.ErrorIs(t, err, writeErr)
	assert.False(t, outcome.NewRecord)
}

func TestResultServiceRollbackDeletesMovesWhenNoPreviousRecord(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	writeErr := errors.New("write failed")
	deleteErr := errors.New("delete failed")
	store.EXPECT().Get(mockAnyContext(), BestMovesKey).Return("", domain.ErrKeyNotFound)
	store.EXPECT().Set(mockAnyContext(), BestMovesKey, "15").Return(nil)
	store.EXPECT().Set(mockAnyContext(), BestTimeKey, "0,30,0").Return(writeErr)
	store.EXPECT().Delete(mockAnyContext(), BestMovesKey).Return(deleteErr)

	_, err := service.RecordIfBest(context.Background(), 15, domain.TimeSnapshot{Seconds: 30})
	require.ErrorIs(t, err, writeErr)
	require.ErrorIs(t, err, deleteErr)
	assert.ErrorContains(t, err, "rollback best moves")
}

func TestResultServiceClearDeletesBothKeys(t *testing.T) {
	store := mocks.NewMockKeyValueStore(t)
	service := NewResultService(store, nil)

	store.EXPECT().Delete(mockAnyContext(), BestMovesKey).Return(nil)
	store.EXPECT().Delete(mockAnyContext(), BestTimeKey).Return(nil)

	require.NoError(t, service.Clear(context.Background()))
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}
