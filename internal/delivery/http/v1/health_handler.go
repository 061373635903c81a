package v1

import (
	"net/http"

	"skill-summarizer-backend/internal/delivery/http/response"
	"skill-summarizer-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r gin.IRouter, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Check)
}

// HealthCheck godoc
// @Summary      Service health
// @Description  Reports whether the document store is reachable
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	status, err := h.healthUC.Check(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "System operational", status)
}
