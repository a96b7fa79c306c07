package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthlab/portal-api/internal/handler"
	"github.com/healthlab/portal-api/internal/service/catalog"
)

type Handler struct {
	service catalog.CatalogService
}

func NewHandler(service catalog.CatalogService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	tests := r.Group("/tests")
	{
		tests.GET("", h.ListTests)
		tests.GET("/:id", h.GetTest)
	}
}

func (h *Handler) ListTests(c *gin.Context) {
	tests, err := h.service.ListTests(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(tests))
}

func (h *Handler) GetTest(c *gin.Context) {
	test, err := h.service.GetTest(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(test))
}
