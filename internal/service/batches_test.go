package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/internal/storage"
	"github.com/novina/Novina/mocks"
)

// TestListBatches_LimitNormalization: limit<=0 -> default, limit>max -> max.
func TestListBatches_LimitNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero_uses_default", in: 0, want: 20},
		{name: "negative_uses_default", in: -5, want: 20},
		{name: "within_bounds", in: 10, want: 10},
		{name: "clamped_to_max", in: 500, want: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			st := mocks.NewMockStorage(ctrl)
			svc := newSvcForTest(t, st, nil)

			st.EXPECT().ListBatches(gomock.Any(), models.BatchFilter{Limit: tt.want}).Return(nil, nil)

			_, err := svc.ListBatches(context.Background(), tt.in, nil)
			require.NoError(t, err)
		})
	}
}

func TestListBatches_StatusFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, st, nil)

	bad := models.BatchStatus("exploded")
	_, err := svc.ListBatches(context.Background(), 10, &bad)
	require.ErrorIs(t, err, ErrInvalidArgument)

	failed := models.BatchFailed
	want := []models.Batch{{ID: uuid.New(), Status: models.BatchFailed}}
	st.EXPECT().ListBatches(gomock.Any(), models.BatchFilter{Limit: 10, Status: &failed}).Return(want, nil)

	got, err := svc.ListBatches(context.Background(), 10, &failed)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBatchByID_And_Delete_MapNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, st, nil)

	id := uuid.New()
	st.EXPECT().BatchByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)
	st.EXPECT().DeleteBatch(gomock.Any(), id).Return(storage.ErrNotFound)

	_, err := svc.BatchByID(context.Background(), id)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.DeleteBatch(context.Background(), id), ErrNotFound)
}

func TestClearBatches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, st, nil)

	st.EXPECT().ClearBatches(gomock.Any()).Return(int64(12), nil)

	n, err := svc.ClearBatches(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 12, n)
}

// TestOpenBatch_ProcessingFailure_ClosesBatch: если перевод в processing не удался,
// пакет всё равно закрывается как failed и ошибка уходит вызывающему.
func TestOpenBatch_ProcessingFailure_ClosesBatch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, st, nil)

	gomock.InOrder(
		st.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(nil),
		st.EXPECT().MarkBatchProcessing(gomock.Any(), gomock.Any()).
			Return(errors.New("storage.postgres.MarkBatchProcessing: conn closed")),
		st.EXPECT().FinishBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, res models.BatchResult) error {
				require.Equal(t, models.BatchFailed, res.Status)
				require.Equal(t, "conn closed", *res.ErrorMessage)
				return nil
			}),
	)

	b := &models.Batch{GenerationType: models.GenerationScheduled}
	err := svc.openBatch(context.Background(), b)
	require.ErrorIs(t, err, ErrPersistence)
	require.Equal(t, models.BatchFailed, b.Status)
}

func TestOpenBatch_SaveFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, st, nil)

	st.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := svc.openBatch(context.Background(), &models.Batch{GenerationType: models.GenerationManual})
	require.ErrorIs(t, err, ErrPersistence)
}
