package url

import (
	"net/url"
	"testing"
)

func TestMutate(t *testing.T) {
	type testCase struct {
		Name     string
		BaseURL  string
		Funcs    []MutationFunc
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "root",
			BaseURL:  "/",
			Funcs:    []MutationFunc{WithPath("/")},
			Expected: "/",
		},
		{
			Name:     "article",
			BaseURL:  "/",
			Funcs:    []MutationFunc{WithPath("/articles", "cv37img5tppgl4002kb0")},
			Expected: "/articles/cv37img5tppgl4002kb0",
		},
		{
			Name:     "write with id",
			BaseURL:  "/",
			Funcs:    []MutationFunc{WithPath("/write"), WithValues("id", "cv37img5tppgl4002kb0")},
			Expected: "/write?id=cv37img5tppgl4002kb0",
		},
		{
			Name:     "prefixed",
			BaseURL:  "https://example.net/blog/",
			Funcs:    []MutationFunc{WithPath("/write")},
			Expected: "https://example.net/blog/write",
		},
		{
			Name:     "without values",
			BaseURL:  "/write?id=foo&page=2",
			Funcs:    []MutationFunc{WithoutValues("id")},
			Expected: "/write?page=2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			baseURL, err := url.Parse(tc.BaseURL)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			mutated := Mutate(baseURL, tc.Funcs...)

			if e, g := tc.Expected, mutated.String(); e != g {
				t.Errorf("mutated.String(): expected '%s', got '%s'", e, g)
			}

			if e, g := tc.BaseURL, baseURL.String(); e != g {
				t.Errorf("baseURL should not be mutated: expected '%s', got '%s'", e, g)
			}
		})
	}
}
