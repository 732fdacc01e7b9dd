package template

import (
	"context"
	"strings"

	"github.com/a-h/templ"
)

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
