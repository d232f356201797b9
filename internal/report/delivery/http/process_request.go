package http

import (
	"reportlog-srv/internal/model"
	"reportlog-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIngestReportRequest(c *gin.Context) (ingestReportReq, error) {
	var req ingestReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processIngestReportRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}

	return req, nil
}

func (h *handler) processIngestReportBatchRequest(c *gin.Context) (ingestReportBatchReq, error) {
	var req ingestReportBatchReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processIngestReportBatchRequest: ShouldBindJSON failed: %v", err)
		return req, errWrongBody
	}

	return req, nil
}

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	var req listReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, errWrongQuery
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetReportRequest(c *gin.Context) (getReportReq, model.Scope, error) {
	req := getReportReq{
		ExecutionID: c.Param("execution_id"),
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
