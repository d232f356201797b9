package http

import (
	"time"

	"reportlog-srv/internal/feedback"
)

type submitFeedbackReq struct {
	Relevance         int    `json:"relevance" binding:"required"`
	Completeness      int    `json:"completeness" binding:"required"`
	Reliability       int    `json:"reliability" binding:"required"`
	Understandability int    `json:"understandability" binding:"required"`
	Comments          string `json:"comments,omitempty"`
}

func (r submitFeedbackReq) toInput(executionID string) feedback.SubmitInput {
	return feedback.SubmitInput{
		ExecutionID: executionID,
		Scores: feedback.Scores{
			Relevance:         r.Relevance,
			Completeness:      r.Completeness,
			Reliability:       r.Reliability,
			Understandability: r.Understandability,
			Comments:          r.Comments,
		},
	}
}

type submitFeedbackResp struct {
	ID          string `json:"id"`
	ExecutionID string `json:"execution_id"`
	LoggedAt    string `json:"logged_at"`
}

func (h *handler) newSubmitFeedbackResp(o feedback.SubmitOutput) submitFeedbackResp {
	return submitFeedbackResp{
		ID:          o.ID,
		ExecutionID: o.ExecutionID,
		LoggedAt:    o.LoggedAt.UTC().Format(time.RFC3339),
	}
}

type feedbackResp struct {
	ID                string `json:"id"`
	Username          string `json:"user_name"`
	ExecutionID       string `json:"execution_id"`
	Relevance         int    `json:"relevance"`
	Completeness      int    `json:"completeness"`
	Reliability       int    `json:"reliability"`
	Understandability int    `json:"understandability"`
	Comments          string `json:"comments,omitempty"`
	Query             string `json:"query"`
	Category          string `json:"category"`
	LoggedAt          string `json:"logged_at"`
}

func (h *handler) newFeedbackResp(o feedback.FeedbackOutput) feedbackResp {
	return feedbackResp{
		ID:                o.ID,
		Username:          o.Username,
		ExecutionID:       o.ExecutionID,
		Relevance:         o.Scores.Relevance,
		Completeness:      o.Scores.Completeness,
		Reliability:       o.Scores.Reliability,
		Understandability: o.Scores.Understandability,
		Comments:          o.Scores.Comments,
		Query:             o.Query,
		Category:          o.Category,
		LoggedAt:          o.LoggedAt.UTC().Format(time.RFC3339),
	}
}

type listFeedbackExecutionsResp struct {
	ExecutionIDs []string `json:"execution_ids"`
}

func (h *handler) newListFeedbackExecutionsResp(o feedback.ListExecutionIDsOutput) listFeedbackExecutionsResp {
	return listFeedbackExecutionsResp{ExecutionIDs: o.ExecutionIDs}
}
