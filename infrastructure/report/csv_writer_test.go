package report

import (
	"bytes"
	"context"
	"testing"

	"mentcare/domain/core/aggregates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	writer := NewCSVWriter(&buf)

	census := aggregates.RiskCensus{Count: 2, High: 1, Medium: 0, Low: 1}
	require.NoError(t, writer.Write(context.Background(), census))

	assert.Equal(t, "count,high,medium,low\n2,1,0,1\n", buf.String())
}

func TestCSVWriter_WriteEmptyCensus(t *testing.T) {
	var buf bytes.Buffer
	writer := NewCSVWriter(&buf)

	require.NoError(t, writer.Write(context.Background(), aggregates.RiskCensus{}))

	assert.Equal(t, "count,high,medium,low\n0,0,0,0\n", buf.String())
}
