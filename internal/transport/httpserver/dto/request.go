// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import "channel-insights-service/internal/domain"

// SearchRequest represents the query parameters for channel search.
type SearchRequest struct {
	Query string `query:"q" validate:"required,min=1,max=100"`
}

// CompareRequest represents the request body for channel comparison.
type CompareRequest struct {
	ChannelIDs []string `json:"channel_ids" validate:"required,min=2,max=5,dive,channel_id"`
}

// RankingsRequest represents the query parameters for the ranking list.
type RankingsRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// ChannelRefRequest is one saved channel in a selection payload.
type ChannelRefRequest struct {
	ID        string `json:"id" validate:"required,channel_id"`
	Title     string `json:"title" validate:"max=200"`
	Thumbnail string `json:"thumbnail" validate:"omitempty,url,max=500"`
}

// SelectionRequest represents the request body for saving a selection.
type SelectionRequest struct {
	Channels []ChannelRefRequest `json:"channels" validate:"max=5,dive"`
}

// ToRefs converts the selection payload to domain references.
func (r *SelectionRequest) ToRefs() []domain.ChannelRef {
	refs := make([]domain.ChannelRef, len(r.Channels))
	for i, ch := range r.Channels {
		refs[i] = domain.ChannelRef{
			ID:        ch.ID,
			Title:     ch.Title,
			Thumbnail: ch.Thumbnail,
		}
	}

	return refs
}
