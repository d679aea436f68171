package component

import (
	"context"

	"github.com/a-h/templ"
	httpCtx "github.com/bornholm/scribe/internal/http/context"
	"github.com/bornholm/scribe/internal/http/url"
)

type MutationFunc = url.MutationFunc

var (
	WithPath      = url.WithPath
	WithValues    = url.WithValues
	WithoutValues = url.WithoutValues
)

func BaseURL(ctx context.Context, funcs ...url.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := url.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}
