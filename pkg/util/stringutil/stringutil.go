package stringutil

import (
	"unicode/utf8"

	"github.com/axgle/mahonia"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// fallback decoders, tried in order after gb18030
var encodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"GBK", simplifiedchinese.GBK},
	{"BIG5", traditionalchinese.Big5},
	{"EUC-JP", japanese.EUCJP},
	{"SHIFT_JIS", japanese.ShiftJIS},
	{"EUC-KR", korean.EUCKR},
	{"windows-1252", charmap.Windows1252},
	{"ISO-8859-1", charmap.ISO8859_1},
}

// ToUTF8 returns data as valid UTF-8. Valid input is returned untouched;
// otherwise legacy code pages are tried and the first valid decoding wins.
func ToUTF8(data []byte) []byte {
	if len(data) == 0 || utf8.Valid(data) {
		return data
	}

	if result := mahonia.NewDecoder("gb18030").ConvertString(string(data)); utf8.ValidString(result) {
		return []byte(result)
	}

	for _, enc := range encodings {
		result, err := enc.enc.NewDecoder().Bytes(data)
		if err == nil && utf8.Valid(result) {
			return result
		}
	}

	return data
}
