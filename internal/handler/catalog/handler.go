package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hkaraoglu/ir-scheduler/internal/handler"
	"github.com/hkaraoglu/ir-scheduler/internal/service/catalog"
)

type Handler struct {
	service *catalog.Service
}

func NewHandler(service *catalog.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	procedures := r.Group("/procedures")
	{
		procedures.GET("", h.ListProcedures)
	}
}

// ListProcedures returns the active catalog grouped by category, the shape
// the scheduling form's selection controls consume.
func (h *Handler) ListProcedures(c *gin.Context) {
	grouped, err := h.service.ListActiveGrouped(c.Request.Context())
	if err != nil {
		handler.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(grouped))
}
