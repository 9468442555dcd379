// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package api is the HTTP layer over the dashboard service.

Routes live under /api/v1 and answer with the models.APIResponse envelope:

	{"status":"success","data":...,"metadata":{"timestamp":"..."}}

Errors carry a machine-readable code:

  - VALIDATION_ERROR (400): bad query parameter or body
  - NOT_FOUND (404): unknown saved view or route
  - UPSTREAM_FETCH_ERROR (502): the item source failed; the message is user-facing
  - RATE_LIMIT_EXCEEDED (429): per-IP budget exhausted
  - INTERNAL_ERROR (500): store or encoding failure

GET /api/v1/dashboard is the exception to the 502 rule: it reports a failed
fetch in its fetchError field so the page can still render engagement state.

Exports are raw CSV or HTML downloads rather than envelopes. /metrics serves
Prometheus and /swagger/ the generated API docs.

Middleware order is request id, real IP, panic recovery and CORS globally,
then security headers, Prometheus instrumentation, httprate limits and
compression inside /api/v1.
*/
package api
