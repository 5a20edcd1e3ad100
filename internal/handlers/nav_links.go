package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NavLink is one entry of the side navigation.
type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

// navLinks is the static navigation table. At this application's size a
// constant lookup table is all this needs to be.
var navLinks = []NavLink{
	{Name: "Home", Href: "/dashboard", Icon: "home"},
	{Name: "Invoices", Href: "/dashboard/invoices", Icon: "document-duplicate"},
	{Name: "Customers", Href: "/dashboard/customers", Icon: "user-group"},
}

// registerNavRoutes registers the navigation routes.
func registerNavRoutes(rg *gin.RouterGroup) {
	rg.GET("/nav-links", getNavLinks)
}

// getNavLinks godoc
// @Summary Navigation links
// @Description Returns the side navigation entries.
// @Tags navigation
// @Produce json
// @Success 200 {array} NavLink
// @Security SessionCookie
// @Router /nav-links [get]
func getNavLinks(c *gin.Context) {
	c.JSON(http.StatusOK, navLinks)
}
