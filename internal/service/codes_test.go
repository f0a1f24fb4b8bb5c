// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-totp-keeper/internal/otp"
	"github.com/MKhiriev/go-totp-keeper/models"
)

func fixedClock(sec int64) Clock {
	return func() time.Time {
		return time.Unix(sec, 0)
	}
}

func rfcRecord() models.TotpRecord {
	return models.TotpRecord{
		Secret: models.Secret("12345678901234567890"),
		Algo:   models.AlgoSHA1,
		Digits: 8,
		Step:   30,
	}
}

func TestGenerate_MatchesRFC6238Vector(t *testing.T) {
	svc := NewCodeService(fixedClock(59))

	code, err := svc.Generate(rfcRecord())
	require.NoError(t, err)

	assert.Equal(t, "94287082", code.Value)
	assert.Equal(t, uint64(1), code.SecondsLeft)
}

func TestGenerate_IdempotentWithinWindow(t *testing.T) {
	record := rfcRecord()

	first, err := NewCodeService(fixedClock(31)).Generate(record)
	require.NoError(t, err)
	second, err := NewCodeService(fixedClock(58)).Generate(record)
	require.NoError(t, err)

	assert.Equal(t, first.Value, second.Value)
	assert.Greater(t, first.SecondsLeft, second.SecondsLeft)
}

func TestGenerate_SecondsLeftResetsAtBoundary(t *testing.T) {
	record := rfcRecord()

	atBoundary, err := NewCodeService(fixedClock(60)).Generate(record)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), atBoundary.SecondsLeft)
}

func TestGenerate_PropagatesClockError(t *testing.T) {
	svc := NewCodeService(fixedClock(-100))

	_, err := svc.Generate(rfcRecord())
	assert.ErrorIs(t, err, otp.ErrClockBeforeEpoch)
}

func TestGenerateAll_SortedByName(t *testing.T) {
	records := models.TotpRecordDict{
		"zeta":  rfcRecord(),
		"alpha": rfcRecord(),
		"mid":   rfcRecord(),
	}

	svc := NewCodeService(fixedClock(59))
	codes, err := svc.GenerateAll(records)
	require.NoError(t, err)

	require.Len(t, codes, 3)
	assert.Equal(t, "alpha", codes[0].Name)
	assert.Equal(t, "mid", codes[1].Name)
	assert.Equal(t, "zeta", codes[2].Name)
	for _, named := range codes {
		assert.Equal(t, "94287082", named.Code.Value)
	}
}

func TestGenerateAll_EmptyDict(t *testing.T) {
	svc := NewCodeService(nil)

	codes, err := svc.GenerateAll(models.TotpRecordDict{})
	require.NoError(t, err)
	assert.Empty(t, codes)
}
