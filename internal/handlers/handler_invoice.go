package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/acmedash/invoice_dashboard_app/internal/apperrors"
	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
	"github.com/acmedash/invoice_dashboard_app/internal/dto"
	"github.com/acmedash/invoice_dashboard_app/internal/middleware"
	"github.com/acmedash/invoice_dashboard_app/internal/searchsync"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// RegisterInvoiceRoutes registers all invoice-related routes.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	// The client debounces search input; this bounds read load from clients
	// that don't.
	rate, _ := limiter.NewRateFromFormatted("20-S")
	searchLimiter := limitergin.NewMiddleware(limiter.New(memory.NewStore(), rate))

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", searchLimiter, h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.POST("", h.createInvoice)
		invoices.POST("/:invoiceID", h.updateInvoice)
		invoices.POST("/:invoiceID/delete", h.deleteInvoice)
	}
}

// formFields flattens the submitted form into the field->value mapping the
// validation pipeline consumes. Repeated fields keep their first value.
func formFields(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()
	form := make(map[string]string, len(c.Request.PostForm))
	for k, vs := range c.Request.PostForm {
		if len(vs) > 0 {
			form[k] = vs[0]
		}
	}
	return form
}

// renderCommandResult translates a mutation command outcome into the HTTP
// response. The handler, not the command, performs the navigation transfer;
// a failed submission stays on the form with its FormActionState.
func renderCommandResult(c *gin.Context, res dto.CommandResult) {
	switch {
	case res.Succeeded && res.Redirect != "":
		c.Redirect(http.StatusSeeOther, res.Redirect)
	case res.Succeeded:
		c.JSON(http.StatusOK, res.State)
	case len(res.State.Errors) > 0:
		c.JSON(http.StatusUnprocessableEntity, res.State)
	default:
		c.JSON(http.StatusInternalServerError, res.State)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Returns one page of the invoices listing filtered by the free-text query.
// @Tags invoices
// @Produce json
// @Param query query string false "Free-text filter"
// @Param page query int false "Page number (1-based)" default(1)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state := searchsync.StateFromParams(c.Request.URL.Query())
	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), state.Query, state.Page)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getInvoice godoc
// @Summary Get an invoice by ID
// @Description Retrieves a single invoice for the edit form.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security SessionCookie
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	inv, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Validates the submitted form and creates an invoice. On success control transfers to the invoices listing.
// @Tags invoices
// @Accept x-www-form-urlencoded
// @Produce json
// @Param customerId formData string true "Customer ID"
// @Param amount formData string true "Amount in major units, e.g. 19.99"
// @Param status formData string true "pending or paid"
// @Success 303
// @Failure 422 {object} dto.FormActionState
// @Failure 500 {object} dto.FormActionState
// @Security SessionCookie
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	res := h.invoiceService.CreateInvoice(c.Request.Context(), formFields(c))
	renderCommandResult(c, res)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Validates the submitted form and overwrites the invoice's customer, amount and status. The id and date never change.
// @Tags invoices
// @Accept x-www-form-urlencoded
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param customerId formData string true "Customer ID"
// @Param amount formData string true "Amount in major units"
// @Param status formData string true "pending or paid"
// @Success 303
// @Failure 422 {object} dto.FormActionState
// @Failure 500 {object} dto.FormActionState
// @Security SessionCookie
// @Router /invoices/{invoiceID} [post]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	res := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("invoiceID"), formFields(c))
	renderCommandResult(c, res)
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Deletes the invoice and reports the outcome in place; deletion happens from within the listing view.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.FormActionState
// @Failure 500 {object} dto.FormActionState
// @Security SessionCookie
// @Router /invoices/{invoiceID}/delete [post]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	res := h.invoiceService.DeleteInvoice(c.Request.Context(), c.Param("invoiceID"))
	renderCommandResult(c, res)
}
