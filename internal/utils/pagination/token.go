package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// Cursor is the keyset position of the last row of a page: rows are ordered
// by date descending, then ID descending.
type Cursor struct {
	Date time.Time
	ID   string
}

// EncodeCursor creates an opaque, URL-safe token for the row after which the next page starts.
func EncodeCursor(date time.Time, id string) string {
	tokenStr := date.UTC().Format(timeFormat) + "|" + id
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
// Malformed tokens are validation errors.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	date, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid pagination token format (date parse): %v", apperrors.ErrValidation, err)
	}

	return Cursor{Date: date, ID: parts[1]}, nil
}
