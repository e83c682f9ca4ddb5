package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lachapa-pdv/gateway"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
)

func TestSummarize_DemoDay(t *testing.T) {
	now := time.Date(2025, 10, 22, 16, 0, 0, 0, time.UTC)
	d := Summarize(gateway.DemoOrders(now), now)

	assert.Equal(t, 5, d.OrderCount)
	assert.True(t, decimal.RequireFromString("234.80").Equal(d.TotalSales), d.TotalSales.String())
	assert.Equal(t, "R$ 234,80", d.TotalSalesLabel)
	assert.True(t, decimal.RequireFromString("46.96").Equal(d.AverageTicket), d.AverageTicket.String())
	assert.Equal(t, 4, d.OrdersInProgress)
	assert.Equal(t, 38, d.AverageWaitMinutes)

	assert.Equal(t, "X-Bacon", d.TopProduct)
	require.NotEmpty(t, d.ProductRanking)
	assert.Equal(t, 3, d.ProductRanking[0].Quantity)
	assert.True(t, decimal.RequireFromString("68.70").Equal(d.ProductRanking[0].Revenue))

	require.Len(t, d.PaymentBreakdown, 3)
	assert.Equal(t, models.PaymentCard, d.PaymentBreakdown[0].Method)
	assert.Equal(t, "Cartão", d.PaymentBreakdown[0].Label)
	assert.Equal(t, models.PaymentPix, d.PaymentBreakdown[2].Method)

	require.Len(t, d.SalesByHour, 1)
	assert.Equal(t, 15, d.SalesByHour[0].Hour)
	assert.Equal(t, 5, d.SalesByHour[0].Orders)
}

func TestSummarize_Empty(t *testing.T) {
	d := Summarize(nil, time.Now())
	assert.Equal(t, 0, d.OrderCount)
	assert.True(t, d.AverageTicket.IsZero())
	assert.Empty(t, d.TopProduct)
	assert.NotNil(t, d.ProductRanking)
	assert.Equal(t, "R$ 0,00", d.TotalSalesLabel)
}

func TestReportService_Dashboard(t *testing.T) {
	now := time.Date(2025, 10, 22, 16, 0, 0, 0, time.UTC)
	st := store.New()
	st.Load(gateway.DemoOrders(now))

	d := NewReportService(st).WithClock(func() time.Time { return now }).Dashboard()
	assert.Equal(t, 5, d.OrderCount)
	assert.Equal(t, now, d.GeneratedAt)
}
