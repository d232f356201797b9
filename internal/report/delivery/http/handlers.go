package http

import (
	"reportlog-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Ingest one report record
// @Description Upsert a report record keyed by execution_id (insert-or-replace, last write wins)
// @Tags Report
// @Accept json
// @Produce json
// @Param body body ingestReportReq true "Report record"
// @Success 200 {object} ingestReportResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) IngestReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.IngestReport: processIngestReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Ingest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.IngestReport: usecase Ingest failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIngestReportResp(o))
}

// @Summary Ingest a batch of report records
// @Description Upsert each record independently; a malformed record never aborts the rest
// @Tags Report
// @Accept json
// @Produce json
// @Param body body ingestReportBatchReq true "Report records"
// @Success 200 {object} ingestReportBatchResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/reports/batch [post]
func (h *handler) IngestReportBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReportBatchRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.IngestReportBatch: processIngestReportBatchRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.IngestBatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.IngestReportBatch: usecase IngestBatch failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIngestReportBatchResp(o))
}

// @Summary List visible reports
// @Description Return reports whose groups intersect the caller's groups, most recent first
// @Tags Report
// @Produce json
// @Param status query string false "Filter by status (success|error)"
// @Param category query string false "Filter by category"
// @Param page query int false "Page (1-indexed)"
// @Param limit query int false "Items per page"
// @Success 200 {object} listReportsResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase List failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// @Summary Get one report
// @Description Return one report by execution id, subject to the caller's group filter
// @Tags Report
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} reportResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{execution_id} [get]
func (h *handler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: processGetReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	rec, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.GetReport: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newReportResp(rec))
}

// @Summary Flatten one report
// @Description Render a report as plain [QUERY]/[OUTPUT]/[MID_STEPS] text
// @Tags Report
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} flattenReportResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{execution_id}/flatten [get]
func (h *handler) FlattenReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.FlattenReport: processGetReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.Flatten(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.FlattenReport: usecase Flatten failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newFlattenReportResp(o))
}

// @Summary List files referenced by one report
// @Description Return the distinct source documents cited by a report's steps with presigned download URLs
// @Tags Report
// @Produce json
// @Param execution_id path string true "Execution ID"
// @Success 200 {object} listReportFilesResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/{execution_id}/files [get]
func (h *handler) ListReportFiles(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReportFiles: processGetReportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	o, err := h.uc.ListReferencedFiles(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReportFiles: usecase ListReferencedFiles failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListReportFilesResp(o))
}
