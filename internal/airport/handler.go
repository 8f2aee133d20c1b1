package airport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	directory *Directory
}

func NewHandler(d *Directory) *Handler {
	return &Handler{
		directory: d,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/airports", h.ListAirportsHandler)
	router.GET("/v1/airports/:code", h.GetAirportHandler)
	router.GET("/v1/airports/country/:country", h.ListByCountryHandler)
}

func (h *Handler) ListAirportsHandler(c *gin.Context) {
	search := c.Query("search")
	country := c.Query("country")

	c.JSON(http.StatusOK, h.directory.Search(search, country))
}

func (h *Handler) GetAirportHandler(c *gin.Context) {
	code := c.Param("code")

	airport, ok := h.directory.ByCode(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Airport not found",
			"code":  "NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, airport)
}

func (h *Handler) ListByCountryHandler(c *gin.Context) {
	country := c.Param("country")

	c.JSON(http.StatusOK, h.directory.ByCountry(country))
}
