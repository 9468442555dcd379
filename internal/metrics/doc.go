// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package metrics provides Prometheus collectors for the learnqueue server.

All collectors are registered with the default registry via promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:3000/metrics

# Available Metrics

API:
  - learnqueue_api_requests_total (method, endpoint, status_code)
  - learnqueue_api_request_duration_seconds (method, endpoint)
  - learnqueue_api_active_requests
  - learnqueue_api_rate_limit_hits_total (endpoint)

Item source:
  - learnqueue_upstream_fetch_duration_seconds (source)
  - learnqueue_upstream_fetch_errors_total (source, error_type)
  - learnqueue_upstream_items (source)
  - learnqueue_circuit_breaker_* (name)
  - learnqueue_cache_hits_total / _misses_total / _evictions_total (cache_type)

Preference store:
  - learnqueue_store_operation_duration_seconds (backend, operation)
  - learnqueue_store_operation_errors_total (backend, operation)
  - learnqueue_store_decode_fallbacks_total (key)

Engagement:
  - learnqueue_engagement_events_total (type)
  - learnqueue_event_publish_errors_total (type)
  - learnqueue_achievements_unlocked_total (achievement, rarity)
  - learnqueue_current_streak_days
  - learnqueue_recommendations_served_total (category)
  - learnqueue_websocket_connections, _messages_sent_total, _errors_total

# Usage

	start := time.Now()
	items, err := source.Fetch(ctx)
	metrics.RecordUpstreamFetch("notion", time.Since(start), len(items), err, "")

Collectors are package-level variables; tests assert on them with
prometheus/testutil.
*/
package metrics
