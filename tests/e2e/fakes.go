//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ------------------------------------------------------------
// Stripe API stand-in: checkout session create and retrieve
// ------------------------------------------------------------
type FakeStripe struct {
	mu        sync.Mutex
	server    *httptest.Server
	sessions  map[string]map[string]any
	created   int
	retrieved int
}

func NewFakeStripe() *FakeStripe {
	f := &FakeStripe{sessions: map[string]map[string]any{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeStripe) URL() string { return f.server.URL }
func (f *FakeStripe) Close()      { f.server.Close() }

func (f *FakeStripe) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = map[string]map[string]any{}
	f.created = 0
	f.retrieved = 0
}

// PutSession registers a checkout session as Stripe would return it.
func (f *FakeStripe) PutSession(id string, paid bool, plan, email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	status := "unpaid"
	if paid {
		status = "paid"
	}
	f.sessions[id] = map[string]any{
		"id":             id,
		"object":         "checkout.session",
		"payment_status": status,
		"customer_email": email,
		"metadata":       map[string]string{"plan": plan},
	}
}

func (f *FakeStripe) Retrieved() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retrieved
}

func (f *FakeStripe) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")

	const sessionsPath = "/v1/checkout/sessions"
	switch {
	case r.Method == http.MethodPost && r.URL.Path == sessionsPath:
		_ = r.ParseForm()
		f.created++
		id := fmt.Sprintf("cs_test_e2e_%d", f.created)
		session := map[string]any{
			"id":             id,
			"object":         "checkout.session",
			"url":            "https://checkout.stripe.com/c/pay/" + id,
			"payment_status": "unpaid",
			"metadata":       map[string]string{"plan": r.PostForm.Get("metadata[plan]")},
		}
		f.sessions[id] = session
		_ = json.NewEncoder(w).Encode(session)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, sessionsPath+"/"):
		f.retrieved++
		session, ok := f.sessions[strings.TrimPrefix(r.URL.Path, sessionsPath+"/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such checkout.session"}}`)
			return
		}
		_ = json.NewEncoder(w).Encode(session)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"unknown route"}}`)
	}
}

// ------------------------------------------------------------
// Realtime Database stand-in holding one JSON document
// ------------------------------------------------------------
type FakeFirebase struct {
	mu     sync.Mutex
	server *httptest.Server
	body   []byte
	down   bool
}

func NewFakeFirebase() *FakeFirebase {
	f := &FakeFirebase{body: []byte("null")}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeFirebase) URL() string { return f.server.URL + "/.json" }
func (f *FakeFirebase) Close()      { f.server.Close() }

func (f *FakeFirebase) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.body = []byte("null")
	f.down = false
}

func (f *FakeFirebase) SetDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

// KeyIDs lists the ids in the document's keys array.
func (f *FakeFirebase) KeyIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var doc struct {
		Keys []struct {
			ID string `json:"id"`
		} `json:"keys"`
	}
	_ = json.Unmarshal(f.body, &doc)
	ids := make([]string, 0, len(doc.Keys))
	for _, k := range doc.Keys {
		ids = append(ids, k.ID)
	}
	return ids
}

func (f *FakeFirebase) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		http.Error(w, `{"error":"service unavailable"}`, http.StatusServiceUnavailable)
		return
	}
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(f.body)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.body = body
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
