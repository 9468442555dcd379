// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package main provides the Learnqueue HTTP server
//
// Learnqueue serves a personal learning queue read from Notion or a JSON feed,
// with bookmarks, notes, streaks, saved views and recommendations kept locally.
//
// @title Learnqueue API
// @version 1.0
// @description Personal learning queue dashboard: filtering, analytics, recommendations, streaks and export
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Export and share endpoints allow 20 requests per minute.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "UPSTREAM_FETCH_ERROR",
// @description     "message": "Failed to fetch items (HTTP 503)"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-10T09:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/learnqueue/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and the live event stream
//
// @tag.name Items
// @tag.description Filtered item list, facets, analytics and the dashboard snapshot
//
// @tag.name Engagement
// @tag.description Bookmarks, consumed flags, notes and dark mode
//
// @tag.name Recommendations
// @tag.description Suggestions, learned preferences and the reading streak
//
// @tag.name Views
// @tag.description Saved filter configurations
//
// @tag.name Export
// @tag.description CSV and HTML downloads and share links
package main
