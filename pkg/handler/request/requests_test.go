package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageRequest(t *testing.T) {
	q, _ := url.ParseQuery("gene=slc4a1a&gene=&gene=hbba1&action=add")
	req := ParsePageRequest(q)
	assert.Equal(t, []string{"slc4a1a", "hbba1"}, req.Genes)
	assert.Equal(t, ActionAdd, req.Action)

	req = ParsePageRequest(url.Values{})
	assert.Empty(t, req.Genes)
	assert.Equal(t, ActionNone, req.Action)
}

func TestAction_RoundTrip(t *testing.T) {
	for _, a := range []Action{ActionAdd, ActionReset} {
		assert.Equal(t, a, ParseAction(a.String()))
	}
	assert.Equal(t, ActionNone, ParseAction("delete"))
}
