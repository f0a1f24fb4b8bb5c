// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ops

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// URL-shape errors for otpauth parsing.
var (
	ErrURLScheme = errors.New("unknown scheme provided in url")
	ErrURLHost   = errors.New("unknown domain provided in url")
)

// parsedURL is the result of decoding an otpauth URL: the record key the
// URL suggests, the record itself, and any query keys that were not
// recognized (reported, not fatal).
type parsedURL struct {
	Name     string
	Record   models.TotpRecord
	Unknowns []string
}

// parseOtpauthURL decodes a `otpauth://totp/...` provisioning URL into a
// record. The path label "issuer:username" populates both fields and the
// default record name; query parameters secret, digits, step/period,
// algorithm, and issuer override the Google-Authenticator defaults.
func parseOtpauthURL(raw string) (parsedURL, error) {
	out := parsedURL{
		Name: "Unknown",
		Record: models.TotpRecord{
			Secret: models.Secret{},
			Algo:   models.AlgoSHA1,
			Digits: models.DefaultDigits,
			Step:   models.DefaultStep,
		},
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return parsedURL{}, fmt.Errorf("failed to parse url: %w", err)
	}

	if parsed.Scheme != "otpauth" {
		return parsedURL{}, ErrURLScheme
	}
	if parsed.Host != "totp" {
		return parsedURL{}, ErrURLHost
	}

	// url.Parse has already percent-decoded the path label.
	label := strings.TrimPrefix(parsed.Path, "/")
	if issuer, username, found := strings.Cut(label, ":"); found {
		out.Record.Issuer = &issuer
		out.Record.Username = &username
		out.Name = issuer
	} else if label != "" {
		out.Name = label
	}

	for key, values := range parsed.Query() {
		value := ""
		if len(values) > 0 {
			value = values[0]
		}

		switch key {
		case "secret":
			secret, err := parseSecret(value)
			if err != nil {
				return parsedURL{}, err
			}
			out.Record.Secret = secret
		case "digits":
			digits, err := strconv.ParseUint(value, 10, 32)
			if err != nil {
				return parsedURL{}, fmt.Errorf("digits is not a valid unsigned integer: %w", err)
			}
			out.Record.Digits = uint32(digits)
		case "step", "period":
			step, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return parsedURL{}, fmt.Errorf("step/period is not a valid unsigned integer: %w", err)
			}
			out.Record.Step = step
		case "algorithm":
			algo, err := parseAlgo(value)
			if err != nil {
				return parsedURL{}, err
			}
			out.Record.Algo = algo
		case "issuer":
			issuer := value
			out.Record.Issuer = &issuer
		default:
			out.Unknowns = append(out.Unknowns, key)
		}
	}

	return out, nil
}

// buildOtpauthURL renders a record back into a provisioning URL, suitable
// for QR display and import into authenticator apps.
func buildOtpauthURL(name string, record models.TotpRecord) string {
	label := name
	if record.Issuer != nil && record.Username != nil {
		label = *record.Issuer + ":" + *record.Username
	}

	query := url.Values{}
	query.Set("secret", encodeSecret(record.Secret))
	query.Set("algorithm", record.Algo.String())
	query.Set("digits", strconv.FormatUint(uint64(record.Digits), 10))
	query.Set("period", strconv.FormatUint(record.Step, 10))
	if record.Issuer != nil {
		query.Set("issuer", *record.Issuer)
	}

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + label,
		RawQuery: query.Encode(),
	}

	return u.String()
}
