package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/drankou/vader-sentiment/internal/report"
	"github.com/drankou/vader-sentiment/vader"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	sia, err := vader.New()
	if err != nil {
		t.Fatalf("vader.New: %v", err)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	ts := httptest.NewServer(New(sia, opts).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestScore(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := post(t, ts.URL+"/api/v1/score", `{"text": "The book was good."}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var result report.Result
	decodeBody(t, resp, &result)
	if result.Text != "The book was good." {
		t.Errorf("text = %q", result.Text)
	}
	if result.Label != "positive" {
		t.Errorf("label = %q, want positive", result.Label)
	}
	if result.Scores.Compound != 0.4404 {
		t.Errorf("compound = %v, want 0.4404", result.Scores.Compound)
	}
	if result.Scores.Pos != 0.492 || result.Scores.Neu != 0.508 || result.Scores.Neg != 0 {
		t.Errorf("scores = %+v", result.Scores)
	}
}

func TestScore_EmptyText(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := post(t, ts.URL+"/api/v1/score", `{"text": ""}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var result report.Result
	decodeBody(t, resp, &result)
	if result.Scores != (vader.Scores{}) || result.Label != "neutral" {
		t.Errorf("result = %+v", result)
	}
}

func TestScore_BadRequest(t *testing.T) {
	ts := newTestServer(t, Options{})

	for name, body := range map[string]string{
		"malformed":     `{"text": `,
		"wrong type":    `{"text": 42}`,
		"unknown field": `{"txt": "hi"}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp := post(t, ts.URL+"/api/v1/score", body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			var e map[string]string
			decodeBody(t, resp, &e)
			if !strings.Contains(e["error"], "invalid request body") {
				t.Errorf("error = %q", e["error"])
			}
		})
	}
}

func TestScore_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, Options{MaxBodyBytes: 32})

	body := `{"text": "` + strings.Repeat("good ", 20) + `"}`
	resp := post(t, ts.URL+"/api/v1/score", body)
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", resp.StatusCode)
	}
}

func TestScoreBatch(t *testing.T) {
	ts := newTestServer(t, Options{Workers: 4})

	texts := []string{"The book was good.", "The book was bad.", "hello there", ""}
	payload, _ := json.Marshal(map[string][]string{"texts": texts})

	resp := post(t, ts.URL+"/api/v1/score/batch", string(payload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var got batchResponse
	decodeBody(t, resp, &got)
	if len(got.Results) != len(texts) {
		t.Fatalf("got %d results, want %d", len(got.Results), len(texts))
	}
	wantLabels := []string{"positive", "negative", "neutral", "neutral"}
	for i, r := range got.Results {
		if r.Text != texts[i] {
			t.Errorf("results[%d].text = %q, want %q", i, r.Text, texts[i])
		}
		if r.Label != wantLabels[i] {
			t.Errorf("results[%d].label = %q, want %q", i, r.Label, wantLabels[i])
		}
	}
}

func TestScoreBatch_Empty(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := post(t, ts.URL+"/api/v1/score/batch", `{"texts": []}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !bytes.Contains(raw, []byte(`"results":[]`)) {
		t.Errorf("body = %s", raw)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/api/v1/score")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestRequestLogging(t *testing.T) {
	sia, err := vader.New()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Formatter: log.LogfmtFormatter})
	h := New(sia, Options{Logger: logger}).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	out := buf.String()
	for _, want := range []string{"path=/healthz", "status=200", "request_id="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
