// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

/*
Package services adapts blocking components to suture's Serve(ctx) contract.

HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded timeout.

RefreshService re-warms the item cache on an interval and tells WebSocket
clients when the item list changed or the source failed.

Components that already implement Serve(ctx) error, such as websocket.Hub and
events.Processor, are added to the tree directly.
*/
package services
