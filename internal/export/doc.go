// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package export renders an item selection for download or sharing.

Three formats are supported:

  - CSV: one row per item with a fixed column set
  - HTML: a printable document, escaped by html/template
  - Share payload: base64 JSON embedded in a /shared/<payload> link

The selection itself is a Scope (all, bookmarked or consumed) applied to the
item list after the consumed overlay.
*/
package export
