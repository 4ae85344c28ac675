package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/novina/Novina/internal/config"
	"github.com/novina/Novina/internal/models"
	"github.com/novina/Novina/mocks"
)

func TestStartSchedule_InvalidInterval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)
	svc := newSvcForTest(t, st, nil)

	require.Error(t, svc.StartSchedule(context.Background()))
}

// TestStartSchedule_RunOnStart_ErrorDoesNotStopLoop: ошибка прогона логируется,
// цикл живёт до отмены ctx и возвращает nil.
func TestStartSchedule_RunOnStart_ErrorDoesNotStopLoop(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)

	svc := newSvcForTest(t, st, noCredentials, func(c *config.Config) {
		c.Schedule = config.ScheduleConfig{Enabled: true, Interval: time.Hour, RunOnStart: true}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{})
	st.EXPECT().ListProviders(gomock.Any(), true).
		DoAndReturn(func(context.Context, bool) ([]models.Provider, error) {
			close(ran)
			return nil, errors.New("db down")
		})

	done := make(chan error, 1)
	go func() { done <- svc.StartSchedule(ctx) }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate run")
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on ctx cancel")
	}
}

// TestStartSchedule_Ticks: без run_on_start первый прогон случается по тикеру.
func TestStartSchedule_Ticks(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := mocks.NewMockStorage(ctrl)

	svc := newSvcForTest(t, st, noCredentials, func(c *config.Config) {
		c.Schedule = config.ScheduleConfig{Enabled: true, Interval: 20 * time.Millisecond}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticked := make(chan struct{}, 8)
	st.EXPECT().ListProviders(gomock.Any(), true).
		DoAndReturn(func(context.Context, bool) ([]models.Provider, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return nil, errors.New("db down")
		}).MinTimes(1)

	done := make(chan error, 1)
	go func() { done <- svc.StartSchedule(ctx) }()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a tick")
	}

	cancel()
	require.NoError(t, <-done)
}
