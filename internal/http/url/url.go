package url

import (
	"net/url"
	"path"
	"strings"
)

type MutationFunc func(u *url.URL)

// Mutate returns a copy of the given url with the mutations applied
func Mutate(u *url.URL, funcs ...MutationFunc) *url.URL {
	copy := *u
	mutated := &copy

	for _, fn := range funcs {
		fn(mutated)
	}

	return mutated
}

func WithPath(paths ...string) MutationFunc {
	return func(u *url.URL) {
		hasTrailingSlash := len(paths) > 0 && strings.HasSuffix(paths[len(paths)-1], "/")

		u.Path = path.Join(append([]string{u.Path}, paths...)...)
		if u.Path == "" {
			u.Path = "/"
		}

		if hasTrailingSlash && u.Path != "/" {
			u.Path += "/"
		}
	}
}

func WithValues(key string, values ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, v := range values {
			query.Add(key, v)
		}
		u.RawQuery = query.Encode()
	}
}

func WithoutValues(keys ...string) MutationFunc {
	return func(u *url.URL) {
		query := u.Query()
		for _, k := range keys {
			query.Del(k)
		}
		u.RawQuery = query.Encode()
	}
}
