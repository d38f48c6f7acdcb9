package v1

import (
	"net/http"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	portfolioUC     domain.PortfolioUsecase
	contactUC       domain.ContactUsecase
	contactEndpoint string
}

// NewSiteHandler registers the landing page and the portfolio content API
func NewSiteHandler(site, api *gin.RouterGroup, portfolioUC domain.PortfolioUsecase, contactUC domain.ContactUsecase) {
	handler := &SiteHandler{
		portfolioUC:     portfolioUC,
		contactUC:       contactUC,
		contactEndpoint: api.BasePath() + "/contact",
	}

	site.GET("/", handler.Index)
	api.GET("/portfolio", handler.GetPortfolio)
}

// Index renders the landing page. It does not depend on mail settings.
func (h *SiteHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Portfolio":       h.portfolioUC.GetPortfolio(),
		"MailConfigured":  h.contactUC.MailConfigured(),
		"ContactEndpoint": h.contactEndpoint,
		"Year":            time.Now().Year(),
	})
}

// GetPortfolio godoc
// @Summary      Portfolio content
// @Description  Returns the content rendered on the landing page.
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Portfolio}
// @Router       /portfolio [get]
func (h *SiteHandler) GetPortfolio(c *gin.Context) {
	response.Success(c, http.StatusOK, "Portfolio content", h.portfolioUC.GetPortfolio())
}
