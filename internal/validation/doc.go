// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

// Package validation validates API request structs with go-playground/validator.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Failures are reported under the
// field's json name and convert to the VALIDATION_ERROR API shape:
//
//	type CreateViewRequest struct {
//	    Name string `json:"name" validate:"notblank,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code, apiErr.Message
//	}
//
// Custom tags:
//   - notblank: string is non-empty after trimming whitespace
//   - sortby: one of score, estimatedTime, dateAdded
package validation
