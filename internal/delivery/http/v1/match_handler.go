package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-matcher-backend/internal/delivery/http/response"
	"employee-matcher-backend/internal/domain"
	"employee-matcher-backend/pkg/apperror"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

// NewMatchHandler registers the matching route
func NewMatchHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	r.POST("/find-matches", handler.FindMatches)
}

// FindMatches godoc
// @Summary      Find matching candidates
// @Description  Rank all stored candidates against a task description and return the best fits.
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        task  body      domain.TaskRequest  true  "Task description and result count"
// @Success      200  {object}  response.Response{data=[]domain.MatchResult}
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /find-matches [post]
func (h *MatchHandler) FindMatches(c *gin.Context) {
	var req domain.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	results, err := h.matchUC.FindMatches(c.Request.Context(), &req)
	if err != nil {
		var ranking *domain.RankingError
		if errors.As(err, &ranking) {
			c.Error(apperror.BadGateway("Failed to score candidates using AI. The task or profiles may be ambiguous, or the AI model returned an invalid response.", err))
			return
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidates ranked", results)
}
