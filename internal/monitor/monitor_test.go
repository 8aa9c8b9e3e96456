package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsValue_ReachesDriverAsText(t *testing.T) {
	v := detailsValue(map[string]any{"storageCode": "not-found", "op": "products.Get"})

	// a []byte argument would be encoded as a bytea literal under the
	// simple query protocol and rejected by the jsonb column
	encoded, ok := v.(string)
	require.True(t, ok, "details argument must be text, got %T", v)
	assert.JSONEq(t, `{"storageCode":"not-found","op":"products.Get"}`, encoded)
}

func TestDetailsValue_EmptyIsNull(t *testing.T) {
	assert.Nil(t, detailsValue(nil))
	assert.Nil(t, detailsValue(map[string]any{}))
}

func TestDetailsValue_UnencodableIsNull(t *testing.T) {
	assert.Nil(t, detailsValue(map[string]any{"fn": func() {}}))
}

func TestStackValue(t *testing.T) {
	assert.Nil(t, stackValue(""))
	assert.Equal(t, "goroutine 1 [running]:", stackValue("goroutine 1 [running]:"))
}
