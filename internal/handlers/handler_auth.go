package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/acmedash/invoice_dashboard_app/internal/core/ports/services"
	"github.com/acmedash/invoice_dashboard_app/internal/core/services"
	"github.com/acmedash/invoice_dashboard_app/internal/dto"
	"github.com/acmedash/invoice_dashboard_app/internal/middleware"
	"github.com/acmedash/invoice_dashboard_app/internal/platform/config"
	"github.com/acmedash/invoice_dashboard_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: as, cfg: cfg}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService, cfg)

	// Login attempts are limited to 5 per minute per client.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/logout", h.Logout)
	}
}

// Login godoc
// @Summary User login
// @Description Validates credentials and starts a dashboard session.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303
// @Failure 400 {object} dto.LoginFailureResponse
// @Failure 401 {object} dto.LoginFailureResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginFailureResponse{Message: "Email and password are required"})
		return
	}

	user, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if msg, ok := services.LoginFailureMessage(err); ok {
			logger.Warn("Login rejected", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, dto.LoginFailureResponse{Message: msg})
			return
		}
		// Not an authentication failure: surface it as the infrastructure
		// fault it is instead of disguising it as a credential problem.
		logger.Error("Credential check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	token, err := utils.GenerateJWT(user.UserID, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start session"})
		return
	}

	maxAge := int(h.cfg.JWTExpiryDuration.Seconds())
	c.SetCookie(h.cfg.SessionCookieName, token, maxAge, "/", "", h.cfg.IsProduction, true)
	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout godoc
// @Summary User logout
// @Description Clears the dashboard session cookie.
// @Tags auth
// @Success 303
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
