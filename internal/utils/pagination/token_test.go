package pagination

import (
	"encoding/base64"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeTableToken(t *testing.T) {
	cursor := TableCursor{DatasetID: "ds-1", LastDate: civil.Date{Year: 2024, Month: 6, Day: 1}, Served: 2}

	token := EncodeTableToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeTableToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, cursor, decoded, "Cursor should match after decode")
}

func TestDecodeTableTokenError(t *testing.T) {
	// Test invalid base64
	_, err := DecodeTableToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	_, err = DecodeTableToken(base64.StdEncoding.EncodeToString([]byte("ds-1")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Test invalid date
	_, err = DecodeTableToken(EncodeMultiFieldToken("ds-1", "01/06/2024", "1"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	// Test invalid served count
	for _, served := range []string{"x", "0", "-1"} {
		_, err = DecodeTableToken(EncodeMultiFieldToken("ds-1", "2024-06-01", served))
		assert.Error(t, err, served)
		assert.Contains(t, err.Error(), "served count")
	}
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
