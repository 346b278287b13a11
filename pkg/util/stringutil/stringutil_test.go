package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestToUTF8(t *testing.T) {
	assert.Empty(t, ToUTF8(nil))

	valid := []byte("product: Acme Router")
	assert.Equal(t, valid, ToUTF8(valid))

	gbk, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("product: 路由器"))
	assert.NoError(t, err)
	assert.Equal(t, "product: 路由器", string(ToUTF8(gbk)))
}
