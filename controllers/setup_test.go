package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/lachapa-pdv/cart"
	"github.com/yeremiapane/lachapa-pdv/catalog"
	"github.com/yeremiapane/lachapa-pdv/controllers"
	"github.com/yeremiapane/lachapa-pdv/gateway"
	"github.com/yeremiapane/lachapa-pdv/lifecycle"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/services"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

var testNow = time.Date(2025, 10, 22, 15, 40, 0, 0, time.UTC)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Notice  string          `json:"notice"`
}

type kitchenLog struct {
	mu  sync.Mutex
	ids []string
}

func (k *kitchenLog) KitchenTicket(o models.Order) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.ids = append(k.ids, o.ID)
}

func (k *kitchenLog) Receipt(o models.Order) {}

type testEnv struct {
	router  *gin.Engine
	carts   *cart.Registry
	store   *store.Store
	mock    *gateway.Mock
	kitchen *kitchenLog
}

func setupEnv(t *testing.T, seed bool) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SilenceLoggers()

	st := store.New()
	if seed {
		st.Load(gateway.DemoOrders(testNow))
	}
	clock := func() time.Time { return testNow }
	kitchen := &kitchenLog{}
	mock := gateway.NewMock(0, gateway.DemoOrders(testNow))

	cat := catalog.Default()
	carts := cart.NewRegistry(st, func(e *cart.Engine) { e.WithClock(clock) })
	svc := services.NewOrderService(cat, carts, st,
		lifecycle.NewMachine(st, kitchen), mock, kitchen)
	svc.Now = clock
	reports := services.NewReportService(st).WithClock(clock)

	catalogCtrl := controllers.NewCatalogController(cat)
	pdvCtrl := controllers.NewPDVController(svc)
	orderCtrl := controllers.NewOrderController(svc)
	reportCtrl := controllers.NewReportController(reports, nil)

	r := gin.New()
	r.GET("/products", catalogCtrl.GetProducts)
	r.GET("/products/:product_id", catalogCtrl.GetProductByID)
	r.GET("/categories", catalogCtrl.GetCategories)

	pdv := r.Group("/pdv/:session")
	pdv.GET("/cart", pdvCtrl.GetCart)
	pdv.DELETE("/cart", pdvCtrl.ClearCart)
	pdv.POST("/items", pdvCtrl.AddItem)
	pdv.PATCH("/items/:line_id", pdvCtrl.UpdateItem)
	pdv.DELETE("/items/:line_id", pdvCtrl.RemoveItem)
	pdv.POST("/items/:line_id/increment", pdvCtrl.IncrementItem)
	pdv.POST("/items/:line_id/decrement", pdvCtrl.DecrementItem)
	pdv.PUT("/customer", pdvCtrl.SetCustomer)
	pdv.DELETE("/customer", pdvCtrl.ClearCustomer)
	pdv.PUT("/payment", pdvCtrl.SetPaymentMethod)
	pdv.PUT("/notes", pdvCtrl.SetNotes)
	pdv.POST("/submit", pdvCtrl.Submit)

	r.GET("/pedidos", orderCtrl.GetAllOrders)
	r.GET("/pedidos/board", orderCtrl.GetBoard)
	r.GET("/pedidos/:id", orderCtrl.GetOrderByID)
	r.PATCH("/pedidos/:id/status", orderCtrl.UpdateOrderStatus)
	r.POST("/pedidos/:id/advance", orderCtrl.AdvanceOrder)
	r.POST("/pedidos/:id/receipt", orderCtrl.PrintReceipt)

	r.GET("/reports/dashboard", reportCtrl.GetDashboard)
	r.GET("/reports/gateway", reportCtrl.GetGatewayMetrics)

	return testEnv{router: r, carts: carts, store: st, mock: mock, kitchen: kitchen}
}

func (e testEnv) request(t *testing.T, method, path string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}
