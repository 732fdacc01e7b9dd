package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapterBody(t *testing.T) {
	html, err := RenderString(context.Background(), ChapterBody("Chương: 1", []string{"Một <hai>", "Ba & bốn"}))
	require.NoError(t, err)

	assert.Equal(t,
		"<h1>Chương: 1</h1>"+
			"<p class=\"first-line\">Một &lt;hai&gt;</p>"+
			"<p>Ba &amp; bốn</p>",
		html)
}

func TestChapterBodyWithoutTitle(t *testing.T) {
	html, err := RenderString(context.Background(), ChapterBody("", nil))
	require.NoError(t, err)
	assert.Empty(t, html)
}

func TestChapterBodyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RenderString(ctx, ChapterBody("x", []string{"y"}))
	require.ErrorIs(t, err, context.Canceled)
}
