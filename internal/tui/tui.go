// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the live-code watch screen. Codes regenerate on a
// configurable interval and the selected code can be copied to the
// clipboard.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/models"
)

// Watch is the interactive live-code screen over a set of records.
type Watch struct {
	codes   *service.CodeService
	records models.TotpRecordDict
	refresh time.Duration
}

// NewWatch constructs a [Watch]. A refresh of zero or less defaults to
// one second.
func NewWatch(codes *service.CodeService, records models.TotpRecordDict, refresh time.Duration) *Watch {
	if refresh <= 0 {
		refresh = time.Second
	}

	return &Watch{codes: codes, records: records, refresh: refresh}
}

// Run blocks until the user quits or code generation fails.
func (w *Watch) Run(ctx context.Context) error {
	model := newWatchModel(w.codes, w.records, w.refresh)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(watchModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	return result.lastErr
}
