package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSelector(t *testing.T) {
	tbl := []struct {
		name string
		sel  string
		want string
	}{
		{"xpath axis", "//div[contains(@class, 'grid')]", "xpath=//div[contains(@class, 'grid')]"},
		{"parenthesized xpath", "(//a[contains(@href, '/actor/')])[1]", "xpath=(//a[contains(@href, '/actor/')])[1]"},
		{"relative xpath", ".//button[contains(., 'Remove rating')]", "xpath=.//button[contains(., 'Remove rating')]"},
		{"css id", "#email", "#email"},
		{"css attribute", "img[alt='User']", "img[alt='User']"},
		{"css tag", "button[type='submit']", "button[type='submit']"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Selector(tt.sel))
		})
	}
}

func TestDefaultTimeouts(t *testing.T) {
	tm := DefaultTimeouts()
	assert.Equal(t, 2*time.Second, tm.Short)
	assert.Equal(t, 10*time.Second, tm.Standard)
	assert.Equal(t, 15*time.Second, tm.Long)
	assert.Less(t, tm.Short, tm.Standard)
	assert.Less(t, tm.Standard, tm.Long)
}

func TestCloseNil(t *testing.T) {
	var b *Browser
	b.Close() // must not panic
}
