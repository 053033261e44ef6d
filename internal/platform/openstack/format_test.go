package openstack

import (
	"bytes"
	"go/format"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSourcesAreGofmtClean(t *testing.T) {
	for _, f := range []string{"errors.go", "errors_test.go", "format_test.go"} {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, f)
		assert.True(t, bytes.Equal(src, formatted), "%s is not gofmt-formatted", f)
	}
}
