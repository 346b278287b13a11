package faviconhashutil

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 png
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func TestHash(t *testing.T) {
	data, err := base64.StdEncoding.DecodeString(pixelPNG)
	require.NoError(t, err)

	assert.True(t, IsImage(data))
	assert.Equal(t, int32(131303136), Hash(data))
}

func TestIsImage(t *testing.T) {
	assert.False(t, IsImage([]byte("<html><body>not an icon</body></html>")))
	assert.True(t, IsImage([]byte("\x00\x00\x01\x00\x01\x00")))
}

func TestEncodeLines(t *testing.T) {
	assert.Equal(t, "\n", EncodeLines(nil))
	assert.Equal(t, "YWJj\n", EncodeLines([]byte("abc")))

	// 57 bytes encode to exactly one 76 column line
	encoded := EncodeLines([]byte(strings.Repeat("a", 57)))
	assert.Len(t, encoded, 77)
	assert.Equal(t, 1, strings.Count(encoded, "\n"))

	encoded = EncodeLines([]byte(strings.Repeat("a", 58)))
	lines := strings.Split(strings.TrimSuffix(encoded, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 76)
	assert.Equal(t, "YQ==", lines[1])
}
