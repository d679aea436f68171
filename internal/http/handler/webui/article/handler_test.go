package article

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	gormAdapter "github.com/bornholm/scribe/internal/adapter/gorm"
	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/http/session"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

const testSessionName = "__session"

func TestHandlerCreateArticle(t *testing.T) {
	client := newTestClient(t)

	res := client.post(t, url.Values{"title": {"Hello"}, "content": {"World"}}, "")

	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	if e, g := messageArticleCreated, client.peek(keyNotice); e != g {
		t.Errorf("client.peek(keyNotice): expected '%s', got '%s'", e, g)
	}

	count, err := client.store.CountArticles(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), count; e != g {
		t.Errorf("count: expected '%d', got '%d'", e, g)
	}

	res = client.get(t, "/")

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	for _, expected := range []string{messageArticleCreated, "Hello", "World", "/write?id=", "/articles/"} {
		if !strings.Contains(body, expected) {
			t.Errorf("body should contain '%s'", expected)
		}
	}

	// The notice is delivered once
	res = client.get(t, "/")

	if strings.Contains(res.Body.String(), messageArticleCreated) {
		t.Errorf("body should not contain '%s' anymore", messageArticleCreated)
	}
}

func TestHandlerUpdateArticle(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	article, err := client.store.CreateArticle(ctx, "Hello", "World")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := client.get(t, "/write?id="+string(article.ID()))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	for _, expected := range []string{"Update Hello", `name="id" value="` + string(article.ID()) + `"`, `value="Hello"`, ">World</textarea>"} {
		if !strings.Contains(body, expected) {
			t.Errorf("body should contain '%s'", expected)
		}
	}

	res = client.post(t, url.Values{"id": {string(article.ID())}, "title": {"Updated"}, "content": {"Body"}}, "")

	if e, g := http.StatusFound, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/write?id="+string(article.ID()), res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	if e, g := messageArticleUpdated, client.peek(keyNotice); e != g {
		t.Errorf("client.peek(keyNotice): expected '%s', got '%s'", e, g)
	}

	found, err := client.store.GetArticleByID(ctx, article.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Updated", found.Title(); e != g {
		t.Errorf("found.Title(): expected '%s', got '%s'", e, g)
	}

	if e, g := "Body", found.Content(); e != g {
		t.Errorf("found.Content(): expected '%s', got '%s'", e, g)
	}

	count, err := client.store.CountArticles(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(1), count; e != g {
		t.Errorf("count: expected '%d', got '%d'", e, g)
	}
}

func TestHandlerValidationRedraft(t *testing.T) {
	client := newTestClient(t)

	res := client.post(t, url.Values{"title": {"Draft"}, "content": {"   "}}, "")

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/write", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	if e, g := messageMissingFields, client.peek(keyError); e != g {
		t.Errorf("client.peek(keyError): expected '%s', got '%s'", e, g)
	}

	if e, g := "Draft", client.peek(keyDraftTitle); e != g {
		t.Errorf("client.peek(keyDraftTitle): expected '%s', got '%s'", e, g)
	}

	count, err := client.store.CountArticles(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(0), count; e != g {
		t.Errorf("count: expected '%d', got '%d'", e, g)
	}

	res = client.get(t, "/write")

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	for _, expected := range []string{"Write a new article", messageMissingFields, `value="Draft"`} {
		if !strings.Contains(body, expected) {
			t.Errorf("body should contain '%s'", expected)
		}
	}

	// Drafts are consumed by the form
	res = client.get(t, "/write")

	if strings.Contains(res.Body.String(), `value="Draft"`) {
		t.Error("body should not contain the draft anymore")
	}
}

func TestHandlerValidationRedraftContentOnly(t *testing.T) {
	client := newTestClient(t)

	res := client.post(t, url.Values{"title": {""}, "content": {"Body"}}, "")

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	res = client.get(t, "/write")

	body := res.Body.String()

	if !strings.Contains(body, ">Body</textarea>") {
		t.Error("body should contain the content draft")
	}

	if !strings.Contains(body, `name="title" id="title" value=""`) {
		t.Error("body should contain an empty title")
	}

	res = client.get(t, "/write")

	body = res.Body.String()

	if !strings.Contains(body, "></textarea>") {
		t.Error("body should contain an empty content")
	}

	if strings.Contains(body, messageMissingFields) {
		t.Errorf("body should not contain '%s' anymore", messageMissingFields)
	}
}

func TestHandlerValidationOversizedDraft(t *testing.T) {
	client := newTestClient(t)

	content := strings.Repeat("x", 5000)

	res := client.post(t, url.Values{"title": {""}, "content": {content}}, "")

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if e, g := "/write", res.Header().Get("Location"); e != g {
		t.Errorf("Location: expected '%s', got '%s'", e, g)
	}

	if e, g := messageMissingFields, client.peek(keyError); e != g {
		t.Errorf("client.peek(keyError): expected '%s', got '%s'", e, g)
	}

	if value := client.peek(keyDraftContent); value != "" {
		t.Errorf("client.peek(keyDraftContent): expected no value, got %d bytes", len(value))
	}

	res = client.get(t, "/write")

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	if !strings.Contains(res.Body.String(), messageMissingFields) {
		t.Errorf("body should contain '%s'", messageMissingFields)
	}
}

func TestHandlerRedirectBack(t *testing.T) {
	type testCase struct {
		Name             string
		Values           url.Values
		Referer          string
		ExpectedLocation string
	}

	validID := string(model.NewArticleID())

	testCases := []testCase{
		{
			Name:             "same host referer",
			Values:           url.Values{"title": {"Draft"}},
			Referer:          "http://example.com/write?id=" + validID,
			ExpectedLocation: "http://example.com/write?id=" + validID,
		},
		{
			Name:             "foreign referer",
			Values:           url.Values{"title": {"Draft"}},
			Referer:          "https://evil.example.org/phishing",
			ExpectedLocation: "/write",
		},
		{
			Name:             "protocol relative referer",
			Values:           url.Values{"title": {"Draft"}},
			Referer:          "//evil.example.org/phishing",
			ExpectedLocation: "/write",
		},
		{
			Name:             "javascript referer",
			Values:           url.Values{"title": {"Draft"}},
			Referer:          "javascript:alert(1)",
			ExpectedLocation: "/write",
		},
		{
			Name:             "no referer with valid id",
			Values:           url.Values{"id": {validID}, "content": {"Body"}},
			ExpectedLocation: "/write?id=" + validID,
		},
		{
			Name:             "no referer with malformed id",
			Values:           url.Values{"id": {"not-an-id"}, "content": {"Body"}},
			ExpectedLocation: "/write",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client := newTestClient(t)

			res := client.post(t, tc.Values, tc.Referer)

			if e, g := http.StatusBadRequest, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedLocation, res.Header().Get("Location"); e != g {
				t.Errorf("Location: expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestHandlerUpdateMissingArticle(t *testing.T) {
	type testCase struct {
		Name string
		ID   string
	}

	testCases := []testCase{
		{Name: "unknown id", ID: string(model.NewArticleID())},
		{Name: "malformed id", ID: "not-an-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			client := newTestClient(t)

			res := client.post(t, url.Values{"id": {tc.ID}, "title": {"Hello"}, "content": {"World"}}, "")

			if e, g := http.StatusNotFound, res.Code; e != g {
				t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := "/", res.Header().Get("Location"); e != g {
				t.Errorf("Location: expected '%s', got '%s'", e, g)
			}

			if e, g := messageArticleNotFound, client.peek(keyError); e != g {
				t.Errorf("client.peek(keyError): expected '%s', got '%s'", e, g)
			}

			count, err := client.store.CountArticles(context.Background())
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := int64(0), count; e != g {
				t.Errorf("count: expected '%d', got '%d'", e, g)
			}
		})
	}
}

func TestHandlerArticlePage(t *testing.T) {
	client := newTestClient(t)

	article, err := client.store.CreateArticle(context.Background(), "Hello", "Some *emphasis*\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	res := client.get(t, "/articles/"+string(article.ID()))

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
	}

	body := res.Body.String()

	if !strings.Contains(body, "<em>emphasis</em>") {
		t.Error("body should contain the rendered markdown")
	}

	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("body should not contain raw html")
	}

	if !strings.Contains(body, "/write?id="+string(article.ID())) {
		t.Error("body should contain the edit link")
	}

	for _, id := range []string{string(model.NewArticleID()), "not-an-id"} {
		res := client.get(t, "/articles/"+id)

		if e, g := http.StatusNotFound, res.Code; e != g {
			t.Errorf("res.Code: expected '%v', got '%v'", e, g)
		}

		if e, g := "/", res.Header().Get("Location"); e != g {
			t.Errorf("Location: expected '%s', got '%s'", e, g)
		}
	}
}

func TestHandlerWritePageUnknownID(t *testing.T) {
	client := newTestClient(t)

	for _, id := range []string{string(model.NewArticleID()), "not-an-id"} {
		res := client.get(t, "/write?id="+url.QueryEscape(id))

		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("res.Code: expected '%v', got '%v'", e, g)
		}

		body := res.Body.String()

		if !strings.Contains(body, "Write a new article") {
			t.Error("body should contain the draft mode title")
		}

		if strings.Contains(body, `name="id"`) {
			t.Error("body should not contain the id field")
		}
	}
}

func TestHandlerListLimit(t *testing.T) {
	client := newTestClient(t, WithListLimit(2))
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		if _, err := client.store.CreateArticle(ctx, title, "Content"); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	res := client.get(t, "/")

	body := res.Body.String()

	if !strings.Contains(body, "First") || !strings.Contains(body, "Second") {
		t.Error("body should contain the first two articles")
	}

	if strings.Contains(body, "Third") {
		t.Error("body should not contain the third article")
	}
}

type testClient struct {
	handler http.Handler
	codec   *session.Codec
	store   *gormAdapter.Store
	cookie  string
}

func (c *testClient) get(t *testing.T, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return c.do(t, req)
}

func (c *testClient) post(t *testing.T, values url.Values, referer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/write", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	return c.do(t, req)
}

func (c *testClient) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	if c.cookie != "" {
		req.AddCookie(&http.Cookie{Name: testSessionName, Value: c.cookie})
	}

	res := httptest.NewRecorder()

	c.handler.ServeHTTP(res, req)

	for _, cookie := range res.Result().Cookies() {
		if cookie.Name == testSessionName {
			c.cookie = cookie.Value
		}
	}

	return res
}

// peek reads a value from the current cookie without consuming it
func (c *testClient) peek(key string) string {
	value, _ := c.codec.Load(testSessionName + "=" + c.cookie).Get(key)
	return value
}

func newTestClient(t *testing.T, funcs ...OptionFunc) *testClient {
	dsn := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := internalDB.Close(); err != nil {
			t.Logf("could not close database: %+v", errors.WithStack(err))
		}
	})

	store := gormAdapter.NewStore(db)

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	codec := session.NewCodec(testSessionName, session.NewCookieStore([]byte("test-secret")))

	return &testClient{
		handler: NewHandler(store, codec, funcs...),
		codec:   codec,
		store:   store,
	}
}
