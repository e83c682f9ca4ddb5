package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/lachapa-pdv/services"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

type ReportController struct {
	Reports *services.ReportService
	Monitor *services.GatewayMonitor
}

func NewReportController(reports *services.ReportService, monitor *services.GatewayMonitor) *ReportController {
	return &ReportController{Reports: reports, Monitor: monitor}
}

func (rc *ReportController) GetDashboard(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Dashboard", rc.Reports.Dashboard())
}

// GetGatewayMetrics reports order API health: calls, failures and queued retries.
func (rc *ReportController) GetGatewayMetrics(c *gin.Context) {
	if rc.Monitor == nil {
		utils.RespondJSON(c, http.StatusOK, "Gateway metrics", services.GatewayMetrics{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Gateway metrics", rc.Monitor.GetMetrics())
}
