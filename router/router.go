package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/catalog"
	"github.com/yeremiapane/lachapa-pdv/controllers"
	"github.com/yeremiapane/lachapa-pdv/kds"
	"github.com/yeremiapane/lachapa-pdv/middlewares"
	"github.com/yeremiapane/lachapa-pdv/services"
)

// Dependencies are the long-lived objects built once in main.
type Dependencies struct {
	Catalog *catalog.Catalog
	Orders  *services.OrderService
	Reports *services.ReportService
	Monitor *services.GatewayMonitor
	Hub     *kds.Hub

	JWTSecret  []byte
	PINHash    map[string]string
	CORSOrigin string
	RateLimit  float64
	RateBurst  int
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(d.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	if d.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(d.RateLimit, d.RateBurst).RateLimit())
	}

	catalogCtrl := controllers.NewCatalogController(d.Catalog)
	pdvCtrl := controllers.NewPDVController(d.Orders)
	orderCtrl := controllers.NewOrderController(d.Orders)
	reportCtrl := controllers.NewReportController(d.Reports, d.Monitor)
	kdsCtrl := controllers.NewKDSController(d.Hub)
	userCtrl := controllers.NewUserController(d.JWTSecret, d.PINHash)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/categories", catalogCtrl.GetCategories)
	r.GET("/products", catalogCtrl.GetProducts)
	r.GET("/products/:product_id", catalogCtrl.GetProductByID)

	if len(d.JWTSecret) > 0 {
		login := r.Group("/")
		login.Use(middlewares.NewStrictRateLimiter(1, 5))
		login.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      STAFF ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(d.JWTSecret))

	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/ws/board", kdsCtrl.BoardSocket)

	// PDV (cashier)
	pdv := auth.Group("/pdv/:session")
	pdv.Use(middlewares.RoleCheck(middlewares.RoleCashier))
	{
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
		pdv.POST("/submit", middlewares.NewStrictRateLimiter(5, 10), pdvCtrl.Submit)
	}

	// BOARD (kitchen and cashier)
	pedidos := auth.Group("/pedidos")
	pedidos.Use(middlewares.RoleCheck(middlewares.RoleKitchen, middlewares.RoleCashier))
	{
		pedidos.GET("", orderCtrl.GetAllOrders)
		pedidos.GET("/board", orderCtrl.GetBoard)
		pedidos.GET("/:id", orderCtrl.GetOrderByID)
		pedidos.PATCH("/:id/status", middlewares.LogOrderAction("status change"), orderCtrl.UpdateOrderStatus)
		pedidos.POST("/:id/advance", middlewares.LogOrderAction("advance"), orderCtrl.AdvanceOrder)
		pedidos.POST("/:id/receipt", middlewares.LogOrderAction("receipt"), orderCtrl.PrintReceipt)
	}

	// REPORTS (admin)
	reports := auth.Group("/reports")
	reports.Use(middlewares.RoleCheck())
	{
		reports.GET("/dashboard", reportCtrl.GetDashboard)
		reports.GET("/gateway", reportCtrl.GetGatewayMetrics)
	}

	return r
}
