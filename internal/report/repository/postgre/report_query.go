package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report/repository"
)

// buildListReportsQuery - Build the List/Count query. Group visibility is an
// intersection test between the stored JSONB int array and the caller's groups.
func (r *implRepository) buildListReportsQuery(opts repository.ListReportsOptions, count bool) (string, []interface{}) {
	var sb strings.Builder

	if count {
		sb.WriteString("SELECT COUNT(*) FROM reportlog.report_model_logs")
	} else {
		sb.WriteString("SELECT id, execution_id, status, category, query, report_groups, payload, logged_at FROM reportlog.report_model_logs")
	}

	args := []interface{}{pq.Array(opts.CallerGroups)}
	conds := []string{
		"EXISTS (SELECT 1 FROM jsonb_array_elements_text(report_groups) AS g WHERE g::int = ANY($1))",
	}

	if opts.Status != "" {
		args = append(args, opts.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.Category != "" {
		args = append(args, opts.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(conds, " AND "))

	if !count {
		// Deterministic order: most recent first, execution_id as tie-break.
		sb.WriteString(" ORDER BY logged_at DESC, execution_id DESC")

		if opts.Limit > 0 {
			sb.WriteString(fmt.Sprintf(" LIMIT %d", opts.Limit))
		}
		if opts.Offset > 0 {
			sb.WriteString(fmt.Sprintf(" OFFSET %d", opts.Offset))
		}
	}

	return sb.String(), args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReportRecord - Scan one row into a ReportRecord, decoding the JSONB
// groups column. Works for both *sql.Row and *sql.Rows.
func scanReportRecord(row rowScanner) (model.ReportRecord, error) {
	var (
		rec        model.ReportRecord
		groupsJSON []byte
		payload    []byte
	)

	if err := row.Scan(
		&rec.ID, &rec.ExecutionID, &rec.Status, &rec.Category, &rec.Query,
		&groupsJSON, &payload, &rec.LoggedAt,
	); err != nil {
		return model.ReportRecord{}, err
	}

	rec.Groups = []int{}
	if len(groupsJSON) > 0 {
		if err := json.Unmarshal(groupsJSON, &rec.Groups); err != nil {
			return model.ReportRecord{}, fmt.Errorf("decode report_groups: %w", err)
		}
	}
	if rec.Groups == nil {
		rec.Groups = []int{}
	}

	rec.Payload = payload

	return rec, nil
}

// normalizeGroups - Never persist a null groups array.
func normalizeGroups(groups []int) []int {
	if groups == nil {
		return []int{}
	}
	return groups
}

// emptyObjectJSON - The payload column is NOT NULL; store an empty document
// when the caller supplied none.
func emptyObjectJSON(data []byte) []byte {
	if len(data) == 0 || string(data) == "null" {
		return []byte("{}")
	}
	return data
}

var _ rowScanner = (*sql.Row)(nil)
var _ rowScanner = (*sql.Rows)(nil)
