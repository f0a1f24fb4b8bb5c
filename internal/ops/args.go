package ops

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-totp-keeper/models"
)

// parseSecret decodes a Base32 secret as entered by the user or carried
// in an otpauth URL. Both padded and unpadded forms are accepted, and
// lowercase input is normalized first.
func parseSecret(value string) (models.Secret, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", ""))

	if decoded, err := base32.StdEncoding.DecodeString(cleaned); err == nil {
		return decoded, nil
	}

	decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("key is an invalid base32 value: %w", err)
	}

	return decoded, nil
}

// encodeSecret renders raw key material back into the Base32 form used
// in otpauth URLs, without padding.
func encodeSecret(secret models.Secret) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret)
}

// parseAlgo wraps [models.ParseAlgo] with flag-friendly wording.
func parseAlgo(value string) (models.Algo, error) {
	algo, err := models.ParseAlgo(value)
	if err != nil {
		return 0, fmt.Errorf("given value for algo is invalid: %w", err)
	}

	return algo, nil
}
