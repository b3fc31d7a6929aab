package pagination_test

import (
	"testing"

	"github.com/squadup/squadup-backend/internal/utils/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	in := pagination.Cursor{LikerID: 42, CreatedUnix: 1700000000123}

	token, err := pagination.Encode(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	// empty token means first page
	c, err := pagination.Decode("")
	require.NoError(t, err)
	assert.Equal(t, pagination.Cursor{}, c)

	_, err = pagination.Decode("!!not base64!!")
	assert.Error(t, err)

	// valid base64 but garbage payload
	_, err = pagination.Decode("Z2FyYmFnZQ==")
	assert.Error(t, err)
}
