package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lachapa-pdv/config"
	"github.com/yeremiapane/lachapa-pdv/kds"
	"github.com/yeremiapane/lachapa-pdv/middlewares"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

var jwtSecret = "integration-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SilenceLoggers()
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Notice  string          `json:"notice"`
}

func call(t *testing.T, r http.Handler, token, method, path string, payload interface{}) (int, apiResponse) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

func token(t *testing.T, operator, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken([]byte(jwtSecret), operator, role, time.Hour)
	require.NoError(t, err)
	return tok
}

// TestEndToEndIntegration drives the main flow through HTTP:
// 1. demo orders are loaded from the mock API
// 2. the cashier builds and submits a cart
// 3. the kitchen advances the order and the ticket is spooled once
// 4. board screens receive the status change over the websocket
func TestEndToEndIntegration(t *testing.T) {
	spool := t.TempDir()
	app, err := buildApp(&config.Config{
		GinMode:        gin.TestMode,
		OrderGateway:   config.GatewayMock,
		APITimeout:     2 * time.Second,
		PrinterKind:    config.PrinterPDF,
		PrintSpoolDir:  spool,
		RabbitExchange: "pdv_events",
		JWTSecret:      jwtSecret,
		CORSOrigin:     "*",
	})
	require.NoError(t, err)
	defer app.Close()

	require.Eventually(t, func() bool { return app.Store.Len() == 5 }, 2*time.Second, 10*time.Millisecond)

	code, _ := call(t, app.Router, "", http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = call(t, app.Router, "", http.MethodGet, "/pdv/caixa-1/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	cashier := token(t, "bia", middlewares.RoleCashier)
	kitchen := token(t, "rui", middlewares.RoleKitchen)

	code, _ = call(t, app.Router, kitchen, http.MethodGet, "/pdv/caixa-1/cart", nil)
	assert.Equal(t, http.StatusForbidden, code)

	// 2. cart
	for _, productID := range []int{1, 4} {
		code, resp := call(t, app.Router, cashier, http.MethodPost, "/pdv/caixa-1/items", map[string]int{"product_id": productID, "quantity": 1})
		require.Equal(t, http.StatusOK, code, resp.Message)
	}
	code, resp := call(t, app.Router, cashier, http.MethodPut, "/pdv/caixa-1/payment", map[string]string{"payment_method": "pix"})
	require.Equal(t, http.StatusOK, code, resp.Message)

	code, resp = call(t, app.Router, cashier, http.MethodPost, "/pdv/caixa-1/submit", nil)
	require.Equal(t, http.StatusCreated, code, resp.Message)
	var order struct {
		ID     string          `json:"id"`
		Status string          `json:"status"`
		Total  decimal.Decimal `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &order))
	assert.Equal(t, "em_analise", order.Status)
	assert.True(t, decimal.RequireFromString("33.495").Equal(order.Total))
	assert.Equal(t, 6, app.Store.Len())

	// 4. websocket client
	srv := httptest.NewServer(app.Router)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/board?token=" + kitchen
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return app.Hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	// 3. advance
	code, resp = call(t, app.Router, kitchen, http.MethodPost, "/pedidos/"+order.ID+"/advance", nil)
	require.Equal(t, http.StatusOK, code, resp.Message)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg kds.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, kds.EventOrderStatusChanged, msg.Event)

	app.Spooler.Wait()
	tickets, err := filepath.Glob(filepath.Join(spool, "kitchen-*.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(spool, "kitchen-"+order.ID+".pdf")}, tickets)

	code, _ = call(t, app.Router, kitchen, http.MethodPost, "/pedidos/"+order.ID+"/advance", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, app.Router, kitchen, http.MethodPost, "/pedidos/"+order.ID+"/advance", nil)
	assert.Equal(t, http.StatusConflict, code)

	app.Spooler.Wait()
	tickets, _ = filepath.Glob(filepath.Join(spool, "kitchen-*.pdf"))
	assert.Len(t, tickets, 1)

	// dashboard is admin only
	code, _ = call(t, app.Router, kitchen, http.MethodGet, "/reports/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, resp = call(t, app.Router, token(t, "gerente", middlewares.RoleAdmin), http.MethodGet, "/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	var dash struct {
		OrderCount int `json:"order_count"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &dash))
	assert.Equal(t, 6, dash.OrderCount)
}

func TestBuildApp_UnknownGateway(t *testing.T) {
	_, err := buildApp(&config.Config{OrderGateway: "grpc"})
	assert.Error(t, err)
}

func TestBuildApp_DatabaseGateway(t *testing.T) {
	app, err := buildApp(&config.Config{
		OrderGateway: config.GatewayDatabase,
		DBDriver:     "sqlite",
		DBDSN:        "file:main_test?mode=memory&cache=shared",
		APITimeout:   time.Second,
		PrinterKind:  config.PrinterLog,
	})
	require.NoError(t, err)
	defer app.Close()

	code, _ := call(t, app.Router, "", http.MethodGet, "/pedidos/board", nil)
	assert.Equal(t, http.StatusOK, code)
}
