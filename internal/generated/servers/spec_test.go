package servers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/orders/{orderId}/transitions/{transition}",
		"/api/v1/orders/{orderId}/notifications/{channel}",
		"/my/tailor/orders",
		"/my/tailor/orders/page/{page}",
		"/my/tailor/orders/{orderId}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}
