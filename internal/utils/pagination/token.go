package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// TableCursor marks where the next page of the reverse-chronological table starts:
// after the first Served rows dated LastDate. Rows sharing a date are contiguous, so the
// count resumes correctly when a page ends between them.
type TableCursor struct {
	DatasetID string
	LastDate  civil.Date
	Served    int
}

// EncodeTableToken creates a page token for c. The dataset id ties it to one load.
func EncodeTableToken(c TableCursor) string {
	return EncodeMultiFieldToken(c.DatasetID, c.LastDate.String(), strconv.Itoa(c.Served))
}

// DecodeTableToken parses a token created by EncodeTableToken.
func DecodeTableToken(token string) (TableCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return TableCursor{}, err
	}
	if len(parts) != 3 || parts[0] == "" {
		return TableCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	lastDate, err := civil.ParseDate(parts[1])
	if err != nil {
		return TableCursor{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}
	served, err := strconv.Atoi(parts[2])
	if err != nil || served < 1 {
		return TableCursor{}, fmt.Errorf("invalid pagination token format (served count '%s')", parts[2])
	}
	return TableCursor{DatasetID: parts[0], LastDate: lastDate, Served: served}, nil
}
