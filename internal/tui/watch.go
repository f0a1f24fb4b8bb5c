// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-totp-keeper/internal/service"
	"github.com/MKhiriev/go-totp-keeper/models"
)

type watchModel struct {
	codes   *service.CodeService
	records models.TotpRecordDict
	refresh time.Duration

	rows    []service.NamedCode
	idx     int
	bar     progress.Model
	status  string
	lastErr error
}

func newWatchModel(codes *service.CodeService, records models.TotpRecordDict, refresh time.Duration) watchModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30

	return watchModel{
		codes:   codes,
		records: records,
		refresh: refresh,
		bar:     bar,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.cmdGenerate(), m.cmdTick())
}

func (m watchModel) cmdTick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) cmdGenerate() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.codes.GenerateAll(m.records)
		return codesMsg{rows: rows, err: err}
	}
}

func (m watchModel) current() (service.NamedCode, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return service.NamedCode{}, false
	}
	return m.rows[m.idx], true
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tea.Batch(m.cmdGenerate(), m.cmdTick())
	case codesMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, tea.Quit
		}
		m.rows = msg.rows
		if m.idx >= len(m.rows) {
			m.idx = len(m.rows) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
			return m, m.cmdClearStatus()
		}
		m.status = "copied"
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.rows)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.copy):
			row, ok := m.current()
			if !ok {
				m.status = "nothing to copy"
				return m, m.cmdClearStatus()
			}
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(row.Code.Value)}
			}
		}
	}

	return m, nil
}

func (m watchModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m watchModel) View() string {
	out := titleStyle.Render("totpkeeper") + "\n\n"

	if len(m.rows) == 0 {
		out += "no records\n"
	}

	for i, row := range m.rows {
		cursor := "  "
		if i == m.idx {
			cursor = cursorStyle.Render("> ")
		}

		step := m.records[row.Name].Step
		ratio := 0.0
		if step > 0 {
			ratio = float64(row.Code.SecondsLeft) / float64(step)
		}

		out += fmt.Sprintf("%s%-20s %s %s %2ds\n",
			cursor, row.Name, codeStyle.Render(row.Code.Value), m.bar.ViewAs(ratio), row.Code.SecondsLeft)
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\n" + errorStyle.Render("error: "+m.lastErr.Error()) + "\n"
	}

	out += "\n" + helpStyle.Render("c copy  up/down select  q quit")
	return appStyle.Render(out)
}
