package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lachapa-pdv/gateway"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

func TestOrderSync_MergesIntoStore(t *testing.T) {
	utils.SilenceLoggers()
	st := store.New()
	st.Add(models.Order{ID: "20251022-0001", CustomerName: "Local", Status: models.StatusEmAnalise, SubmittedAt: "12:00"})

	mock := gateway.NewMock(0, gateway.DemoOrders(lunch))
	n, err := NewOrderSync(mock, st, time.Second).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 6, st.Len())

	local, err := st.Get("20251022-0001")
	require.NoError(t, err)
	assert.Equal(t, "Local", local.CustomerName)
}

func TestOrderSync_FailureLeavesStore(t *testing.T) {
	utils.SilenceLoggers()
	st := store.New()
	mock := gateway.NewMock(0, gateway.DemoOrders(lunch))
	mock.FailWith(errors.New("timeout"))

	_, err := NewOrderSync(mock, st, time.Second).Sync(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, st.Len())
}

func TestOrderSync_StartLoadsInBackground(t *testing.T) {
	utils.SilenceLoggers()
	st := store.New()
	s := NewOrderSync(gateway.NewMock(0, gateway.DemoOrders(lunch)), st, time.Second)
	s.Interval = 10 * time.Millisecond
	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return st.Len() == 5 }, time.Second, 5*time.Millisecond)
}

func TestOrderSync_KeepsOrdersWithPendingPush(t *testing.T) {
	utils.SilenceLoggers()
	ctx := context.Background()
	st := store.New()
	mock := gateway.NewMock(0, gateway.DemoOrders(lunch))
	st.Load(gateway.DemoOrders(lunch))
	gm := NewGatewayMonitor(mock, st, time.Second)

	_, _, err := st.SetStatus("20251022-1234", models.StatusEmProducao)
	require.NoError(t, err)
	mock.FailWith(errors.New("timeout"))
	require.Error(t, gm.UpdateOrderStatus(ctx, "20251022-1234", models.StatusEmProducao))
	mock.FailWith(nil)
	require.NoError(t, mock.UpdateOrderStatus(ctx, "20251022-9012", models.StatusEmEntrega))

	s := NewOrderSync(mock, st, time.Second)
	s.Pending = gm
	n, err := s.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	local, err := st.Get("20251022-1234")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmProducao, local.Status)

	other, err := st.Get("20251022-9012")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmEntrega, other.Status)

	gm.RetryPending(ctx)
	n, err = s.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	local, err = st.Get("20251022-1234")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmProducao, local.Status)
}
