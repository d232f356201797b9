package http

import (
	"reportlog-srv/pkg/response"
	"reportlog-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Submit feedback on a report
// @Description Upsert the caller's assessment of one execution (one live record per user and execution)
// @Tags Feedback
// @Accept json
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Param body body submitFeedbackReq true "Scores"
// @Success 200 {object} submitFeedbackResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{execution_id}/feedback [post]
func (h *handler) SubmitFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	var req submitFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "feedback.delivery.http.SubmitFeedback: ShouldBindJSON failed: %v", err)
		response.Error(c, errWrongBody)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Submit(ctx, sc, req.toInput(c.Param("execution_id")))
	if err != nil {
		h.l.Errorf(ctx, "feedback.delivery.http.SubmitFeedback: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitFeedbackResp(o))
}

// @Summary Get the caller's feedback on a report
// @Description Return the caller's latest assessment of one execution
// @Tags Feedback
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} feedbackResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{execution_id}/feedback [get]
func (h *handler) GetFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Get(ctx, sc, getInputFromPath(c))
	if err != nil {
		h.l.Errorf(ctx, "feedback.delivery.http.GetFeedback: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFeedbackResp(o))
}

// @Summary List executions the caller has reviewed
// @Description Return the execution ids the caller has submitted feedback for
// @Tags Feedback
// @Produce json
// @Success 200 {object} listFeedbackExecutionsResp
// @Failure 401 {object} response.Resp
// @Router /api/v1/feedback/executions [get]
func (h *handler) ListFeedbackExecutions(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.ListExecutionIDs(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "feedback.delivery.http.ListFeedbackExecutions: usecase ListExecutionIDs failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListFeedbackExecutionsResp(o))
}
