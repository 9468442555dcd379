// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/learnqueue/internal/models"
)

// Notion property names read by the mapper.
const (
	propTitle           = "Title"
	propSourceType      = "Source Type"
	propSummary         = "Summary"
	propWhyItMatters    = "Why It Matters"
	propScore           = "Score"
	propEstimatedTime   = "Estimated Time"
	propTags            = "Tags"
	propConsumed        = "Consumed"
	propDateAdded       = "Date Added"
	propPublicationDate = "Publication Date"
	propLink            = "Link"
)

// NotionOptions configures a NotionSource.
type NotionOptions struct {
	BaseURL    string
	APIKey     string
	DatabaseID string
	Version    string
	PageSize   int
	MaxPages   int
}

// NotionSource reads items from a Notion database.
type NotionSource struct {
	opts    NotionOptions
	client  *http.Client
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewNotionSource creates a Notion-backed source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewNotionSource(opts NotionOptions, client *http.Client, limiter *rate.Limiter, logger zerolog.Logger) *NotionSource {
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = 1
	}
	if opts.Version == "" {
		opts.Version = "2022-06-28"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if limiter == nil {
		limiter = newLimiter(0)
	}
	return &NotionSource{
		opts:    opts,
		client:  client,
		limiter: limiter,
		logger:  logger.With().Str("component", "upstream").Str("source", KindNotion).Logger(),
	}
}

// Name implements Source.
func (n *NotionSource) Name() string { return KindNotion }

type notionQuery struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type notionQueryResponse struct {
	Results    []notionPage `json:"results"`
	HasMore    bool         `json:"has_more"`
	NextCursor *string      `json:"next_cursor"`
}

type notionErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type notionPage struct {
	ID         string                    `json:"id"`
	Properties map[string]notionProperty `json:"properties"`
}

type notionText struct {
	PlainText string `json:"plain_text"`
}

type notionName struct {
	Name string `json:"name"`
}

type notionDate struct {
	Start string `json:"start"`
}

type notionProperty struct {
	Type        string       `json:"type"`
	Title       []notionText `json:"title"`
	RichText    []notionText `json:"rich_text"`
	Select      *notionName  `json:"select"`
	MultiSelect []notionName `json:"multi_select"`
	Number      *float64     `json:"number"`
	Checkbox    bool         `json:"checkbox"`
	Date        *notionDate  `json:"date"`
	URL         *string      `json:"url"`
}

// Fetch implements Source.
func (n *NotionSource) Fetch(ctx context.Context) ([]models.Item, error) {
	if n.opts.APIKey == "" || n.opts.DatabaseID == "" {
		return nil, &FetchError{
			Source:  KindNotion,
			Kind:    ErrKindConfig,
			Message: "Notion API key or database ID is not configured",
		}
	}

	items := make([]models.Item, 0, n.opts.PageSize)
	cursor := ""
	for page := 0; page < n.opts.MaxPages; page++ {
		resp, err := n.query(ctx, cursor)
		if err != nil {
			return nil, err
		}
		for i := range resp.Results {
			items = append(items, mapPage(&resp.Results[i]))
		}
		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			break
		}
		cursor = *resp.NextCursor
	}

	n.logger.Debug().Int("items", len(items)).Msg("notion database queried")
	return items, nil
}

func (n *NotionSource) query(ctx context.Context, cursor string) (*notionQueryResponse, error) {
	payload, err := json.Marshal(notionQuery{PageSize: n.opts.PageSize, StartCursor: cursor})
	if err != nil {
		return nil, &FetchError{Source: KindNotion, Kind: ErrKindDecode, Message: "Failed to encode Notion query", Cause: err}
	}

	body, errBody, err := execute(ctx, n.client, n.limiter, KindNotion, apiRequest{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/v1/databases/%s/query", n.opts.BaseURL, n.opts.DatabaseID),
		body:   payload,
		headers: map[string]string{
			"Authorization":  "Bearer " + n.opts.APIKey,
			"Notion-Version": n.opts.Version,
			"Content-Type":   "application/json",
		},
	})
	if err != nil {
		if fe := AsFetchError(KindNotion, err); fe.Kind == ErrKindStatus {
			var apiErr notionErrorResponse
			if json.Unmarshal(errBody, &apiErr) == nil && apiErr.Message != "" {
				fe.Message = "Notion API error: " + apiErr.Message
				fe.Cause = fmt.Errorf("notion %s (HTTP %d)", apiErr.Code, fe.StatusCode)
			}
			return nil, fe
		}
		return nil, err
	}

	var resp notionQueryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FetchError{Source: KindNotion, Kind: ErrKindDecode, Message: "Malformed response from Notion", Cause: err}
	}
	if resp.Results == nil {
		return nil, &FetchError{Source: KindNotion, Kind: ErrKindDecode, Message: "Malformed response from Notion: missing results"}
	}
	return &resp, nil
}

// mapPage converts a database row into an Item.
func mapPage(p *notionPage) models.Item {
	props := p.Properties
	get := func(name string) *notionProperty {
		if v, ok := props[name]; ok {
			return &v
		}
		return nil
	}

	item := models.Item{
		ID:           p.ID,
		Title:        "Untitled",
		SourceType:   "Unknown",
		Tags:         []string{},
		Summary:      plainText(get(propSummary), false),
		WhyItMatters: plainText(get(propWhyItMatters), false),
	}

	if t := plainText(get(propTitle), true); t != "" {
		item.Title = t
	}
	if prop := get(propSourceType); prop != nil && prop.Select != nil && prop.Select.Name != "" {
		item.SourceType = prop.Select.Name
	}
	if prop := get(propScore); prop != nil {
		item.Score = prop.Number
	}
	if prop := get(propEstimatedTime); prop != nil {
		item.EstimatedTime = prop.Number
	}
	if prop := get(propTags); prop != nil {
		for _, tag := range prop.MultiSelect {
			item.Tags = append(item.Tags, tag.Name)
		}
	}
	if prop := get(propConsumed); prop != nil {
		item.Consumed = prop.Checkbox
	}
	item.DateAdded = dateStart(get(propDateAdded))
	item.PublicationDate = dateStart(get(propPublicationDate))
	if prop := get(propLink); prop != nil && prop.URL != nil && *prop.URL != "" {
		item.Link = prop.URL
	}
	return item
}

// plainText concatenates the fragments of a title or rich_text property.
func plainText(prop *notionProperty, title bool) string {
	if prop == nil {
		return ""
	}
	fragments := prop.RichText
	if title {
		fragments = prop.Title
	}
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(f.PlainText)
	}
	return sb.String()
}

func dateStart(prop *notionProperty) *string {
	if prop == nil || prop.Date == nil || prop.Date.Start == "" {
		return nil
	}
	s := prop.Date.Start
	return &s
}
