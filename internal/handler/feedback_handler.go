package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentoraqua/guardianes-api/internal/dto"
	appErrors "github.com/mentoraqua/guardianes-api/pkg/errors"
	"github.com/mentoraqua/guardianes-api/pkg/response"
)

type feedbackService interface {
	RequestFeedback(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResult, error)
}

type feedbackMetrics interface {
	IncFeedback(result string)
}

// FeedbackHandler proxies mentor feedback requests.
type FeedbackHandler struct {
	service feedbackService
	metrics feedbackMetrics
}

// NewFeedbackHandler builds a new handler. metrics may be nil.
func NewFeedbackHandler(service feedbackService, metrics feedbackMetrics) *FeedbackHandler {
	return &FeedbackHandler{service: service, metrics: metrics}
}

// Request godoc
// @Summary Ask the mentor to evaluate a student answer
// @Tags Feedback
// @Accept json
// @Produce json
// @Param payload body dto.FeedbackRequest true "Answer to evaluate"
// @Success 200 {object} response.Envelope
// @Router /feedback [post]
func (h *FeedbackHandler) Request(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid feedback payload"))
		return
	}
	result, err := h.service.RequestFeedback(c.Request.Context(), req)
	if err != nil {
		if h.metrics != nil {
			h.metrics.IncFeedback("error")
		}
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncFeedback("ok")
	}
	response.JSON(c, http.StatusOK, result)
}
