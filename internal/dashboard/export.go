// Learnqueue - Personal Learning Queue Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnqueue

package dashboard

import (
	"context"

	"github.com/tomtom215/learnqueue/internal/export"
	"github.com/tomtom215/learnqueue/internal/models"
)

// ExportItems returns the overlaid items selected by scope, in source order.
func (s *Service) ExportItems(ctx context.Context, scope export.Scope) ([]models.Item, error) {
	items, eng, err := s.overlaid(ctx)
	if err != nil {
		return nil, err
	}
	return export.Select(items, scope, eng.bookmarkSet()), nil
}
