package phonetic

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKagomeAnalyzer_Parse(t *testing.T) {
	a, err := NewKagomeAnalyzer()
	require.NoError(t, err)
	assert.Equal(t, "kagome", a.Name())

	parse, err := a.Parse(context.Background(), "単語")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(parse, "単語\t"), "unexpected parse %q", parse)
	assert.True(t, strings.HasSuffix(parse, "EOS\n"))

	reading, err := ExtractReading(parse)
	require.NoError(t, err)
	assert.Equal(t, "タンゴ", reading)
}

func TestKagomeAnalyzer_CancelledContext(t *testing.T) {
	a, err := NewKagomeAnalyzer()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = a.Parse(ctx, "単語")
	assert.ErrorIs(t, err, context.Canceled)
}
