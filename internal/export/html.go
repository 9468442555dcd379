// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package export

import (
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/tomtom215/learnqueue/internal/models"
)

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>AI Daily Learning Queue - {{.Scope}} Items</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
.header { text-align: center; margin-bottom: 40px; border-bottom: 2px solid #2C3E50; padding-bottom: 20px; }
.item { margin-bottom: 30px; padding: 20px; border: 1px solid #ddd; border-radius: 8px; page-break-inside: avoid; }
.title { font-size: 18px; font-weight: bold; color: #2C3E50; margin-bottom: 10px; }
.meta { font-size: 12px; color: #666; margin-bottom: 15px; }
.summary { margin-bottom: 15px; line-height: 1.6; }
.why-matters { background: #f8f9fa; padding: 15px; border-left: 4px solid #5DADE2; margin-bottom: 15px; }
.tag { display: inline-block; background: #e9ecef; padding: 4px 8px; margin: 2px; border-radius: 4px; font-size: 11px; }
.footer { margin-top: 40px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="header">
<h1>AI Daily Learning Queue</h1>
<p>{{.Scope}} Items ({{len .Items}} total)</p>
<p>Generated on {{.Generated}}</p>
</div>
{{range .Items}}<div class="item">
<div class="title">{{.Title}}</div>
<div class="meta">{{.Meta}}</div>
<div class="summary">{{.Summary}}</div>
<div class="why-matters"><strong>Why It Matters:</strong> {{.WhyItMatters}}</div>
{{if .Tags}}<div class="tags"><strong>Tags:</strong> {{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
{{end}}{{if .Link}}<div class="link"><strong>Link:</strong> <a href="{{.Link}}">{{.Link}}</a></div>
{{end}}</div>
{{end}}<div class="footer">
<p>Exported from AI Daily Learning Queue Dashboard</p>
</div>
</body>
</html>
`

var document = template.Must(template.New("export").Parse(documentTemplate))

type documentData struct {
	Scope     string
	Generated string
	Items     []documentItem
}

type documentItem struct {
	Title        string
	Meta         string
	Summary      string
	WhyItMatters string
	Tags         []string
	Link         string
}

// WriteHTML renders a printable document for items.
func WriteHTML(w io.Writer, scope Scope, items []models.Item, generated time.Time) error {
	data := documentData{
		Scope:     scope.Label(),
		Generated: generated.Format("January 2, 2006"),
		Items:     make([]documentItem, 0, len(items)),
	}
	for i := range items {
		it := &items[i]
		data.Items = append(data.Items, documentItem{
			Title:        it.Title,
			Meta:         MetaLine(it),
			Summary:      it.Summary,
			WhyItMatters: it.WhyItMatters,
			Tags:         it.Tags,
			Link:         deref(it.Link),
		})
	}
	return document.Execute(w, data)
}

// MetaLine returns "sourceType • Score: S • N min read • Consumed".
func MetaLine(it *models.Item) string {
	score := "N/A"
	if it.Score != nil {
		score = strconv.FormatFloat(*it.Score, 'f', -1, 64)
	}
	read := "Time unknown"
	if it.EstimatedTime != nil && *it.EstimatedTime != 0 {
		read = strconv.FormatFloat(*it.EstimatedTime, 'f', -1, 64) + " min read"
	}
	state := "Not consumed"
	if it.Consumed {
		state = "Consumed"
	}
	return it.SourceType + " • Score: " + score + " • " + read + " • " + state
}
