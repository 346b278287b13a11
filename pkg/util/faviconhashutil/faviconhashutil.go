package faviconhashutil

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/spaolacci/murmur3"
	"github.com/zan8in/stringsutil"
)

// shodan encodes favicons like python's base64.encodebytes
const lineLength = 76

// IsImage sniffs data and reports whether it looks like an image.
func IsImage(data []byte) bool {
	return stringsutil.HasPrefixAny(http.DetectContentType(data), "image/")
}

// Hash returns the shodan favicon hash of data: signed murmur3 (seed 0)
// of its base64 encoding wrapped at 76 columns with a trailing newline.
func Hash(data []byte) int32 {
	return int32(murmur3.Sum32([]byte(EncodeLines(data))))
}

// EncodeLines base64-encodes data in newline terminated lines of at most
// 76 characters. Empty data encodes to a single newline.
func EncodeLines(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)

	var sb strings.Builder
	sb.Grow(len(encoded) + len(encoded)/lineLength + 1)
	for len(encoded) > lineLength {
		sb.WriteString(encoded[:lineLength])
		sb.WriteByte('\n')
		encoded = encoded[lineLength:]
	}
	sb.WriteString(encoded)
	sb.WriteByte('\n')

	return sb.String()
}
