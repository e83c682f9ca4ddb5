package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lachapa-pdv/display"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/services"
)

func TestOrders_ListAndSearch(t *testing.T) {
	env := setupEnv(t, true)

	w, resp := env.request(t, http.MethodGet, "/pedidos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cards []display.OrderCard
	decode(t, resp.Data, &cards)
	assert.Len(t, cards, 5)

	_, resp = env.request(t, http.MethodGet, "/pedidos?q=silva", nil)
	decode(t, resp.Data, &cards)
	require.Len(t, cards, 1)
	assert.Equal(t, "20251022-1234", cards[0].ID)
	assert.Equal(t, 25, cards[0].WaitTimeMinutes)
	assert.Equal(t, "Em análise", cards[0].StatusLabel)
	assert.Equal(t, "Cartão", cards[0].PaymentLabel)
	assert.Equal(t, "R$ 35,90", cards[0].TotalFormatted)

	_, resp = env.request(t, http.MethodGet, "/pedidos?q=zzz", nil)
	decode(t, resp.Data, &cards)
	assert.Empty(t, cards)
}

func TestOrders_Board(t *testing.T) {
	env := setupEnv(t, true)

	w, resp := env.request(t, http.MethodGet, "/pedidos/board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cols []display.Column
	decode(t, resp.Data, &cols)
	require.Len(t, cols, 3)

	total := 0
	for _, col := range cols {
		for _, card := range col.Orders {
			assert.Equal(t, col.Status, card.Status)
		}
		total += len(col.Orders)
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, "Foi pra entrega", cols[2].Label)
}

func TestOrders_GetByID(t *testing.T) {
	env := setupEnv(t, true)

	w, _ := env.request(t, http.MethodGet, "/pedidos/20251022-5678", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := env.request(t, http.MethodGet, "/pedidos/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Status)
}

func TestOrders_Advance(t *testing.T) {
	env := setupEnv(t, true)

	w, resp := env.request(t, http.MethodPost, "/pedidos/20251022-1234/advance", nil)
	require.Equal(t, http.StatusOK, w.Code, resp.Message)
	var card display.OrderCard
	decode(t, resp.Data, &card)
	assert.Equal(t, models.StatusEmProducao, card.Status)
	assert.Equal(t, []string{"20251022-1234"}, env.kitchen.ids)

	other, err := env.store.Get("20251022-9012")
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmAnalise, other.Status)

	w, _ = env.request(t, http.MethodPost, "/pedidos/20251022-7890/advance", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = env.request(t, http.MethodPost, "/pedidos/nope/advance", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrders_UpdateStatus(t *testing.T) {
	env := setupEnv(t, true)

	tests := []struct {
		name     string
		id       string
		status   string
		wantCode int
	}{
		{"skip to delivery", "20251022-1234", "em_entrega", http.StatusOK},
		{"backwards", "20251022-7890", "em_analise", http.StatusOK},
		{"into production", "20251022-9012", "em_producao", http.StatusOK},
		{"unknown status", "20251022-1234", "concluido", http.StatusBadRequest},
		{"unknown order", "nope", "em_producao", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := env.request(t, http.MethodPatch, "/pedidos/"+tt.id+"/status", map[string]string{"status": tt.status})
			assert.Equal(t, tt.wantCode, w.Code, resp.Message)
		})
	}

	assert.Equal(t, []string{"20251022-9012"}, env.kitchen.ids)

	w, _ := env.request(t, http.MethodPatch, "/pedidos/20251022-1234/status", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrders_PrintReceipt(t *testing.T) {
	env := setupEnv(t, true)

	w, resp := env.request(t, http.MethodPost, "/pedidos/20251022-3456/receipt", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	var receipt models.Receipt
	decode(t, resp.Data, &receipt)
	assert.Equal(t, "RCP/20251022/20251022-3456", receipt.Number)

	w, _ = env.request(t, http.MethodPost, "/pedidos/nope/receipt", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReports_Dashboard(t *testing.T) {
	env := setupEnv(t, true)

	w, resp := env.request(t, http.MethodGet, "/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var d services.Dashboard
	decode(t, resp.Data, &d)
	assert.Equal(t, 5, d.OrderCount)
	assert.Equal(t, "X-Bacon", d.TopProduct)

	w, _ = env.request(t, http.MethodGet, "/reports/gateway", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalog(t *testing.T) {
	env := setupEnv(t, false)

	w, resp := env.request(t, http.MethodGet, "/products?category=drinks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	decode(t, resp.Data, &products)
	assert.Len(t, products, 2)

	_, resp = env.request(t, http.MethodGet, "/products?q=x-", nil)
	decode(t, resp.Data, &products)
	assert.Len(t, products, 3)

	_, resp = env.request(t, http.MethodGet, "/categories", nil)
	var categories []models.Category
	decode(t, resp.Data, &categories)
	assert.Len(t, categories, 6)

	w, _ = env.request(t, http.MethodGet, "/products/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = env.request(t, http.MethodGet, "/products/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w, _ = env.request(t, http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
