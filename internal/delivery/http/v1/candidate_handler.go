package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-matcher-backend/internal/delivery/http/response"
	"employee-matcher-backend/internal/domain"
)

type CandidateHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewCandidateHandler registers the candidate listing route
func NewCandidateHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &CandidateHandler{resumeUC: resumeUC}

	r.GET("/candidates", handler.ListCandidates)
}

// ListCandidates godoc
// @Summary      List all candidates
// @Description  Returns every processed candidate currently held in the store.
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.CandidateRecord}
// @Router       /candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	records, err := h.resumeUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stored candidates", records)
}
