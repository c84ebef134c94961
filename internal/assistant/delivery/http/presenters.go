package http

import (
	"care-companion/internal/assistant"
	"care-companion/internal/model"
)

// --- Request DTOs ---

type queryReq struct {
	UserID     string `json:"user_id" binding:"required"`
	Query      string `json:"query"`
	VoiceInput bool   `json:"voice_input"`
}

func (r queryReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{
		Query:      r.Query,
		VoiceInput: r.VoiceInput,
	}
}

func (r queryReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// --- Response DTOs ---

type queryResp struct {
	Content           string `json:"content"`
	Provider          string `json:"provider"`
	RequestedProvider string `json:"requested_provider"`
	Reason            string `json:"reason"`
	ElapsedMS         int64  `json:"elapsed_ms"`
	PrivacyPreserving bool   `json:"privacy_preserving"`
	FallbackError     string `json:"fallback_error,omitempty"`
}

func newQueryResp(out assistant.ProcessOutput) queryResp {
	return queryResp{
		Content:           out.Content,
		Provider:          string(out.Provider),
		RequestedProvider: string(out.Decision.Provider),
		Reason:            string(out.Decision.Reason),
		ElapsedMS:         out.ProcessingTime.Milliseconds(),
		PrivacyPreserving: out.PrivacyPreserving,
		FallbackError:     out.FallbackError,
	}
}

type historyResp struct {
	Turns []assistant.ChatTurn `json:"turns"`
	Count int                  `json:"count"`
}

func newHistoryResp(out assistant.HistoryOutput) historyResp {
	return historyResp{
		Turns: out.Turns,
		Count: out.Count,
	}
}
