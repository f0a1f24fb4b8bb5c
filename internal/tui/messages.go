// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-totp-keeper/internal/service"
)

type tickMsg time.Time

type codesMsg struct {
	rows []service.NamedCode
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
