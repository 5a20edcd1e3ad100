package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
	"github.com/acmedash/invoice_dashboard_app/internal/dto"
	"github.com/acmedash/invoice_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

func newCustomerHandler(cs portssvc.CustomerSvcFacade) *customerHandler {
	return &customerHandler{customerService: cs}
}

// registerCustomerRoutes registers all customer-related routes.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := newCustomerHandler(customerService)

	customers := rg.Group("/customers")
	{
		customers.GET("", h.listCustomers)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Returns every customer, ordered by name, for the customer select control.
// @Tags customers
// @Produce json
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list customers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomersResponse(customers))
}
