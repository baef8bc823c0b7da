package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"mentcare/domain/core/aggregates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	census := aggregates.RiskCensus{Count: 2, High: 1, Medium: 0, Low: 1}
	require.NoError(t, writer.Write(context.Background(), census))

	var decoded aggregates.RiskCensus
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, census, decoded)
}
