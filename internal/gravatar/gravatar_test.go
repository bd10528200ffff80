package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("test@example.com")
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=200&r=pg&d=mm"
	assert.Equal(t, want, URL("test@example.com"))
}

func TestURLNormalizesCaseAndWhitespace(t *testing.T) {
	base := URL("test@example.com")
	assert.Equal(t, base, URL("Test@Example.COM"))
	assert.Equal(t, base, URL("  test@example.com  "))
}
