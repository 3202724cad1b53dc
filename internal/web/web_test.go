package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "profile.html", "placeholder.html", "auth.html", "head", "nav", "foot"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}
