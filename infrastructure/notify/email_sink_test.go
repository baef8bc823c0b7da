package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailAlertSink_Notify(t *testing.T) {
	var buf bytes.Buffer
	sink := NewEmailAlertSink(&buf, "care-team@example.org")

	err := sink.Notify(context.Background(), "High-risk patient registered: p001", "Patient Max Mustermann (p001) was registered with high risk.")
	require.NoError(t, err)

	assert.Equal(t,
		"[EMAIL to=care-team@example.org] High-risk patient registered: p001 :: Patient Max Mustermann (p001) was registered with high risk.\n",
		buf.String())
}

func TestEmailAlertSink_OneLinePerAlert(t *testing.T) {
	var buf bytes.Buffer
	sink := NewEmailAlertSink(&buf, "care-team@example.org")
	ctx := context.Background()

	require.NoError(t, sink.Notify(ctx, "first", "a"))
	require.NoError(t, sink.Notify(ctx, "second", "b"))

	assert.Equal(t,
		"[EMAIL to=care-team@example.org] first :: a\n[EMAIL to=care-team@example.org] second :: b\n",
		buf.String())
}
