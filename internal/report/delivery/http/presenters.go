package http

import (
	"encoding/json"
	"time"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report"
	"reportlog-srv/pkg/paginator"
)

type ingestReportReq struct {
	ExecutionID string          `json:"execution_id" binding:"required"`
	Status      string          `json:"status" binding:"required"`
	Category    string          `json:"category,omitempty"`
	Query       string          `json:"query,omitempty"`
	Groups      []int           `json:"groups,omitempty"`
	Payload     json.RawMessage `json:"payload" binding:"required"`
}

func (r ingestReportReq) toInput() report.IngestInput {
	return report.IngestInput{
		ExecutionID: r.ExecutionID,
		Status:      r.Status,
		Category:    r.Category,
		Query:       r.Query,
		Groups:      r.Groups,
		Payload:     r.Payload,
	}
}

type ingestReportBatchReq struct {
	Records []ingestReportReq `json:"records" binding:"required"`
}

func (r ingestReportBatchReq) toInput() report.IngestBatchInput {
	records := make([]report.IngestInput, 0, len(r.Records))
	for _, rec := range r.Records {
		records = append(records, rec.toInput())
	}
	return report.IngestBatchInput{Records: records}
}

type listReportsReq struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	paginator.PaginateQuery
}

func (r listReportsReq) toInput() report.ListInput {
	return report.ListInput{
		Status:   r.Status,
		Category: r.Category,
		PagQuery: r.PaginateQuery,
	}
}

type getReportReq struct {
	ExecutionID string
}

func (r getReportReq) toInput() report.GetInput {
	return report.GetInput{ExecutionID: r.ExecutionID}
}

type ingestReportResp struct {
	ID          string `json:"id"`
	ExecutionID string `json:"execution_id"`
	LoggedAt    string `json:"logged_at"`
}

func (h *handler) newIngestReportResp(o report.IngestOutput) ingestReportResp {
	return ingestReportResp{
		ID:          o.ID,
		ExecutionID: o.ExecutionID,
		LoggedAt:    o.LoggedAt.UTC().Format(time.RFC3339),
	}
}

type ingestBatchItemResp struct {
	ExecutionID string            `json:"execution_id"`
	Record      *ingestReportResp `json:"record,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type ingestReportBatchResp struct {
	Imported int                   `json:"imported"`
	Failed   int                   `json:"failed"`
	Items    []ingestBatchItemResp `json:"items"`
}

func (h *handler) newIngestReportBatchResp(o report.IngestBatchOutput) ingestReportBatchResp {
	resp := ingestReportBatchResp{
		Imported: o.Imported,
		Failed:   o.Failed,
		Items:    make([]ingestBatchItemResp, 0, len(o.Items)),
	}

	for _, item := range o.Items {
		itemResp := ingestBatchItemResp{ExecutionID: item.ExecutionID}
		if item.Record != nil {
			rec := h.newIngestReportResp(*item.Record)
			itemResp.Record = &rec
		}
		if item.Err != nil {
			itemResp.Error = item.Err.Error()
		}
		resp.Items = append(resp.Items, itemResp)
	}

	return resp
}

type reportResp struct {
	ID          string          `json:"id"`
	ExecutionID string          `json:"execution_id"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	Query       string          `json:"query"`
	Groups      []int           `json:"groups"`
	Payload     json.RawMessage `json:"payload"`
	LoggedAt    string          `json:"logged_at"`
}

func (h *handler) newReportResp(rec model.ReportRecord) reportResp {
	return reportResp{
		ID:          rec.ID,
		ExecutionID: rec.ExecutionID,
		Status:      rec.Status,
		Category:    rec.Category,
		Query:       rec.Query,
		Groups:      rec.Groups,
		Payload:     rec.Payload,
		LoggedAt:    rec.LoggedAt.UTC().Format(time.RFC3339),
	}
}

type listReportsResp struct {
	Records   []reportResp                `json:"records"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListReportsResp(o report.ListOutput) listReportsResp {
	records := make([]reportResp, 0, len(o.Records))
	for _, rec := range o.Records {
		records = append(records, h.newReportResp(rec))
	}

	return listReportsResp{
		Records:   records,
		Paginator: o.Paginator.ToResponse(),
	}
}

type flattenReportResp struct {
	ExecutionID string `json:"execution_id"`
	Text        string `json:"text"`
}

func (h *handler) newFlattenReportResp(o report.FlattenOutput) flattenReportResp {
	return flattenReportResp{
		ExecutionID: o.ExecutionID,
		Text:        o.Text,
	}
}

type referencedFileResp struct {
	FileName    string `json:"file_name"`
	ChunkCount  int    `json:"chunk_count"`
	DownloadURL string `json:"download_url,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

type listReportFilesResp struct {
	ExecutionID string               `json:"execution_id"`
	Files       []referencedFileResp `json:"files"`
}

func (h *handler) newListReportFilesResp(o report.ListFilesOutput) listReportFilesResp {
	files := make([]referencedFileResp, 0, len(o.Files))
	for _, f := range o.Files {
		fileResp := referencedFileResp{
			FileName:    f.FileName,
			ChunkCount:  f.ChunkCount,
			DownloadURL: f.DownloadURL,
		}
		if !f.ExpiresAt.IsZero() {
			fileResp.ExpiresAt = f.ExpiresAt.UTC().Format(time.RFC3339)
		}
		files = append(files, fileResp)
	}

	return listReportFilesResp{
		ExecutionID: o.ExecutionID,
		Files:       files,
	}
}
