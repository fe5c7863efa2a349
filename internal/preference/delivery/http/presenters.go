package http

import "ai-todo/internal/preference"

type saveKeyReq struct {
	APIKey string `json:"api_key" binding:"required,max=512"`
}

type statusResp struct {
	Enabled   bool   `json:"enabled"`
	HasKey    bool   `json:"has_key"`
	MaskedKey string `json:"masked_key"`
}

func newStatusResp(s preference.Status) statusResp {
	return statusResp{Enabled: s.Enabled, HasKey: s.HasKey, MaskedKey: s.MaskedKey}
}
