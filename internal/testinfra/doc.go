// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package testinfra provides test infrastructure for integration testing with containers.
//
// It uses testcontainers-go to run real dependencies in Docker. Everything here
// is behind the integration build tag:
//
//	go test -tags "integration nats" ./internal/events/...
//
// # NATS Container
//
// StartNATS runs a JetStream-enabled NATS server for one test and returns its
// client URL for the nats event transport. It skips the test when Docker is
// not reachable and terminates the container during t.Cleanup.
package testinfra
