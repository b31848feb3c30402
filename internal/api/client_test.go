package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nickpending/newscheck/internal/config"
	"github.com/nickpending/newscheck/internal/logging"
	"github.com/nickpending/newscheck/internal/news"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at handler mounted under /api/
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/api/news", opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient_ValidatesBaseURL(t *testing.T) {
	for _, bad := range []string{"", "/api/news", "ftp://host/api/news", "http://"} {
		_, err := NewClient(bad)
		assert.Error(t, err, "base URL %q should be rejected", bad)
	}

	c, err := NewClient("http://localhost:8080/api/news/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/news", c.BaseURL())
	assert.Equal(t, "http://localhost:8080/api/ml", c.MLURL())
}

func TestNewClientFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.API.BaseURL = "https://news.example.com/api/news"
	cfg.API.TimeoutSeconds = 3

	c, err := NewClientFromConfig(cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "https://news.example.com/api/ml", c.MLURL())
	assert.Equal(t, 3*time.Second, c.timeout)
}

func TestListNews(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/news", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "list must not paginate or filter")
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":1,"title":"A","content":"x","fake":false},{"id":2,"title":"B","content":"y","fake":true}]`)
	})

	items, err := client.ListNews(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, news.Item{ID: 1, Title: "A", Content: "x", Fake: false}, items[0])
	assert.Equal(t, news.Item{ID: 2, Title: "B", Content: "y", Fake: true}, items[1])
}

func TestListNews_Empty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "[]")
	})

	items, err := client.ListNews(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestNullBodyIsParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, " null\n")
	})

	_, err := client.ListNews(context.Background())
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr), "GET null should be a parse error, got %v", err)

	item, err := client.CheckNews(context.Background(), news.Submission{Title: "T", Content: "C"})
	assert.True(t, errors.As(err, &parseErr), "POST null should be a parse error, got %v", err)
	assert.Equal(t, news.Item{}, item)
}

func TestCheckNews_MissingVerdict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":3,"title":"T","content":"C"}`)
	})

	_, err := client.CheckNews(context.Background(), news.Submission{Title: "T", Content: "C"})
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr), "got %v", err)
	assert.ErrorIs(t, err, errMissingVerdict)

	_, err = client.GetNews(context.Background(), 3)
	assert.ErrorIs(t, err, errMissingVerdict)
}

func TestCheckNews_PostsSubmission(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var sub news.Submission
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sub))
		assert.Equal(t, news.Submission{Title: "T", Content: "C"}, sub)

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":7,"title":"T","content":"C","fake":true}`)
	})

	item, err := client.CheckNews(context.Background(), news.NewSubmission(" T ", " C "))
	require.NoError(t, err)
	assert.True(t, item.Fake)
	assert.Equal(t, int64(7), item.ID)
}

func TestCheckNews_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "classifier down", http.StatusInternalServerError)
	})

	_, err := client.CheckNews(context.Background(), news.Submission{Title: "T", Content: "C"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Body, "classifier down")
	assert.Equal(t, "status", Kind(err))
}

func TestCheckNews_ParseError(t *testing.T) {
	for _, body := range []string{"<html>oops</html>", "", `["not","an","object"]`} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, body)
		})

		_, err := client.CheckNews(context.Background(), news.Submission{})
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "body %q should be a parse error, got %v", body, err)
		assert.Equal(t, "parse", Kind(err))
	}
}

func TestListNews_ParseErrorOnObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"items":[]}`)
	})

	_, err := client.ListNews(context.Background())
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens any more

	client, err := NewClient(url + "/api/news")
	require.NoError(t, err)

	_, err = client.ListNews(context.Background())
	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr), "got %v", err)
	assert.Equal(t, "transport", Kind(err))
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, WithTimeout(50*time.Millisecond))
	defer close(release)

	_, err := client.ListNews(context.Background())
	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr), "got %v", err)
}

func TestGetAndDeleteNews(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/news/3":
			io.WriteString(w, `{"id":3,"title":"Three","content":"c","fake":false}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/news/3":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	})

	item, err := client.GetNews(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Three", item.Title)

	require.NoError(t, client.DeleteNews(context.Background(), 3))

	_, err = client.GetNews(context.Background(), 99)
	assert.True(t, IsNotFound(err))
}

func TestPredictAndHealth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ml/predict":
			var req map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "miracle cure", req["text"])
			io.WriteString(w, `{"prediction":"FAKE","confidence":"0.9100","message":"Fake news confidence: 91.00%","text_preview":"miracle cure..."}`)
		case "/api/ml/health":
			io.WriteString(w, `{"status":"UP","model":"HuggingFace Transformers","model_name":"distilbert-base-uncased","task":"text-classification"}`)
		default:
			http.NotFound(w, r)
		}
	})

	p, err := client.Predict(context.Background(), "miracle cure")
	require.NoError(t, err)
	assert.Equal(t, "FAKE", p.Prediction)
	assert.Equal(t, "0.9100", p.Confidence)

	h, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UP", h.Status)
	assert.Equal(t, "distilbert-base-uncased", h.ModelName)
}

func TestStatusError_BodyTruncated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, strings.Repeat("x", 2000))
	})

	_, err := client.ListNews(context.Background())
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Len(t, statusErr.Body, maxErrorBody)
}

func TestAnalyze(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ml/analyze", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "some text", body["text"])

		io.WriteString(w, `{"is_fake":true,"confidence_score":0.9,"classification":"FAKE","message":"m","model":"distilbert-base-uncased"}`)
	})

	a, err := client.Analyze(context.Background(), "some text")
	require.NoError(t, err)
	assert.True(t, a.IsFake)
	assert.InDelta(t, 0.9, a.ConfidenceScore, 1e-9)
	assert.Equal(t, "FAKE", a.Classification)
	assert.Equal(t, "distilbert-base-uncased", a.Model)
}
