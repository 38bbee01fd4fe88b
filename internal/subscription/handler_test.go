package subscription

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
	"github.com/beheryahmed1991/subscription-tracker/internal/validation"
)

type stubStore struct {
	createFn func(context.Context, Subscription) (Subscription, error)
	getFn    func(context.Context, uuid.UUID, uuid.UUID) (Subscription, error)
	listFn   func(context.Context, ListFilter) ([]Subscription, error)
	updateFn func(context.Context, Subscription) (Subscription, error)
	deleteFn func(context.Context, uuid.UUID, uuid.UUID) error
}

func (s *stubStore) Create(ctx context.Context, sub Subscription) (Subscription, error) {
	if s.createFn != nil {
		return s.createFn(ctx, sub)
	}
	return sub, nil
}

func (s *stubStore) GetByID(ctx context.Context, userID, id uuid.UUID) (Subscription, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID, id)
	}
	return Subscription{}, sql.ErrNoRows
}

func (s *stubStore) List(ctx context.Context, filter ListFilter) ([]Subscription, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, nil
}

func (s *stubStore) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, sub)
	}
	return sub, nil
}

func (s *stubStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, id)
	}
	return nil
}

var (
	demoUser = user.User{ID: uuid.New(), Username: "demo", DefaultCurrency: "EUR"}
	fixedNow = func() time.Time { return time.Date(2025, time.October, 15, 9, 0, 0, 0, time.UTC) }
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(t *testing.T, store Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		t.Fatalf("validation.Register: %v", err)
	}

	h := NewHandler(NewService(store, fixedNow), newTestLogger())
	h.now = fixedNow

	router := gin.New()
	h.RegisterRoutes(router.Group("/api", middleware.Identity(demoUser)))
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	var stored Subscription
	stub := &stubStore{
		createFn: func(ctx context.Context, sub Subscription) (Subscription, error) {
			sub.ID = uuid.New()
			stored = sub
			return sub, nil
		},
	}
	router := newTestRouter(t, stub)

	rec := doRequest(router, http.MethodPost, "/api/subscriptions", `{
		"name":"Netflix",
		"price":15.99,
		"cycle":"Month",
		"start_date":"2025-01-05",
		"trial_enabled":true,
		"trial_price":0,
		"trial_end_date":"2025-10-31"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if stored.UserID != demoUser.ID || stored.Currency != "EUR" || stored.Cycle != "month" {
		t.Fatalf("unexpected stored subscription: %+v", stored)
	}
	if !stored.Price.Equal(decimal.RequireFromString("15.99")) {
		t.Fatalf("price = %s", stored.Price)
	}

	var view map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if view["trial_active"] != true || view["display_price"] != 0.0 {
		t.Fatalf("expected active trial at price 0, got %v / %v", view["trial_active"], view["display_price"])
	}
	if view["period_label"] != "1 MONTH" || view["currency_symbol"] != "€" {
		t.Fatalf("unexpected labels: %v %v", view["period_label"], view["currency_symbol"])
	}
	if view["start_date"] != "2025-01-05" || view["trial_end_date"] != "2025-10-31" {
		t.Fatalf("unexpected dates: %v %v", view["start_date"], view["trial_end_date"])
	}
}

func TestHandler_CreateInvalidDate(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	rec := doRequest(router, http.MethodPost, "/api/subscriptions", `{"name":"Netflix","price":4.99,"start_date":"invalid-date"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_CreateRejectsBadInput(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	bodies := []string{
		`{"price":4.99}`,
		`{"name":"Netflix"}`,
		`{"name":"Netflix","price":-1}`,
		`{"name":"Netflix","price":1,"currency":"dollars"}`,
		`{"name":"Netflix","price":1,"cycle":"fortnight"}`,
		`{"name":"Netflix","price":1,"frequency":0}`,
	}
	for _, body := range bodies {
		if rec := doRequest(router, http.MethodPost, "/api/subscriptions", body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", body, rec.Code)
		}
	}
}

func TestHandler_GetNotFound(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	rec := doRequest(router, http.MethodGet, "/api/subscriptions/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/api/subscriptions/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_PatchDisablesTrial(t *testing.T) {
	id := uuid.New()
	end := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	existing := Subscription{
		ID:           id,
		UserID:       demoUser.ID,
		Name:         "Cloud",
		Price:        decimal.NewFromInt(10),
		Currency:     "USD",
		Frequency:    1,
		Cycle:        "month",
		TrialEnabled: true,
		TrialPrice:   decimal.NewNullDecimal(decimal.Zero),
		TrialEndDate: &end,
	}

	var updated Subscription
	stub := &stubStore{
		getFn: func(ctx context.Context, userID, got uuid.UUID) (Subscription, error) {
			if userID != demoUser.ID || got != id {
				return Subscription{}, sql.ErrNoRows
			}
			return existing, nil
		},
		updateFn: func(ctx context.Context, sub Subscription) (Subscription, error) {
			updated = sub
			return sub, nil
		},
	}
	router := newTestRouter(t, stub)

	rec := doRequest(router, http.MethodPatch, "/api/subscriptions/"+id.String(), `{"trial_enabled":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if updated.TrialEnabled || updated.TrialPrice.Valid || updated.TrialEndDate != nil {
		t.Fatalf("trial fields not cleared: %+v", updated)
	}
	if updated.Name != "Cloud" || updated.Currency != "USD" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestHandler_List(t *testing.T) {
	var filter ListFilter
	stub := &stubStore{
		listFn: func(ctx context.Context, f ListFilter) ([]Subscription, error) {
			filter = f
			return []Subscription{{ID: uuid.New(), Name: "Notion", Price: decimal.NewFromInt(8), Currency: "USD", Frequency: 2, Cycle: "week"}}, nil
		},
	}
	router := newTestRouter(t, stub)

	rec := doRequest(router, http.MethodGet, "/api/subscriptions?category_id=4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if filter.CategoryID == nil || *filter.CategoryID != 4 || filter.UserID != demoUser.ID {
		t.Fatalf("unexpected filter: %+v", filter)
	}

	var views []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(views) != 1 || views[0]["period_label"] != "2 WEEKS" {
		t.Fatalf("unexpected views: %v", views)
	}
	if _, ok := views[0]["start_date"]; ok {
		t.Fatal("list view should not include detail fields")
	}

	rec = doRequest(router, http.MethodGet, "/api/subscriptions?category_id=all", "")
	if rec.Code != http.StatusOK || filter.CategoryID != nil {
		t.Fatalf("expected unfiltered list, got %d %+v", rec.Code, filter)
	}

	rec = doRequest(router, http.MethodGet, "/api/subscriptions?category_id=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_Delete(t *testing.T) {
	stub := &stubStore{
		deleteFn: func(ctx context.Context, userID, id uuid.UUID) error {
			return sql.ErrNoRows
		},
	}
	router := newTestRouter(t, stub)

	rec := doRequest(router, http.MethodDelete, "/api/subscriptions/"+uuid.NewString(), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	stub.deleteFn = nil
	rec = doRequest(router, http.MethodDelete, "/api/subscriptions/"+uuid.NewString(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
