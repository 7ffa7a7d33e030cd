package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL_Deterministic(t *testing.T) {
	a := URL("a@x.com")
	b := URL("a@x.com")
	assert.Equal(t, a, b)
}

func TestURL_NormalizesAddress(t *testing.T) {
	assert.Equal(t, URL("a@x.com"), URL("  A@X.COM  "))
}

func TestURL_Shape(t *testing.T) {
	// md5("a@x.com") is stable; the URL carries size, rating and fallback.
	got := URL("a@x.com")
	assert.Contains(t, got, "https://www.gravatar.com/avatar/")
	assert.Contains(t, got, "s=200")
	assert.Contains(t, got, "r=pg")
	assert.Contains(t, got, "d=mm")
}

func TestURL_DiffersPerEmail(t *testing.T) {
	assert.NotEqual(t, URL("a@x.com"), URL("b@x.com"))
}
