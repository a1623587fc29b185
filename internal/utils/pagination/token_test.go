package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/paydesk/compchange/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 5, 17, 9, 30, 0, 123456789, time.UTC)
	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

	token := pagination.EncodeToken(createdAt, id)
	decodedAt, decodedID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt))
	assert.Equal(t, id, decodedID)
}

func TestDecodeToken_NotBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("no-separator-here"))
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}

func TestDecodeToken_BadTimestamp(t *testing.T) {
	token := base64.StdEncoding.EncodeToString([]byte("yesterday|some-id"))
	_, _, err := pagination.DecodeToken(token)
	assert.Error(t, err)
}
