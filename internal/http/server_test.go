package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpCtx "github.com/bornholm/scribe/internal/http/context"
	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	echoBaseURL := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		baseURL := httpCtx.BaseURL(r.Context())
		io.WriteString(w, baseURL.String()+" "+r.URL.Path)
	})

	server := NewServer(
		WithBaseURL("https://example.com/blog/"),
		WithMount("/", echoBaseURL),
		WithMount("/metrics/", echoBaseURL),
	)

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Target       string
		ExpectedBody string
	}

	testCases := []testCase{
		{Target: "/write", ExpectedBody: "https://example.com/blog/ /write"},
		{Target: "/metrics/", ExpectedBody: "https://example.com/blog/ /"},
	}

	for _, tc := range testCases {
		t.Run(tc.Target, func(t *testing.T) {
			res := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.Target, nil)

			handler.ServeHTTP(res, req)

			if e, g := http.StatusOK, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedBody, res.Body.String(); e != g {
				t.Errorf("res.Body: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestServerInvalidBaseURL(t *testing.T) {
	server := NewServer(WithBaseURL("://invalid"))

	if _, err := server.Handler(); err == nil {
		t.Error("err should not be nil")
	}
}
