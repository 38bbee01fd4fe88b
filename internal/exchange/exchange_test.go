package exchange

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
	"github.com/beheryahmed1991/subscription-tracker/internal/validation"
)

type upsertCall struct {
	base, target string
	rate         float64
}

type stubStore struct {
	calls []upsertCall
}

func (s *stubStore) List(context.Context, uuid.UUID) ([]Rate, error) {
	return []Rate{{ID: 1, Base: "EUR", Target: "USD", Rate: 1.1}}, nil
}

func (s *stubStore) Upsert(ctx context.Context, userID uuid.UUID, base, target string, rate float64) (Rate, error) {
	s.calls = append(s.calls, upsertCall{base: base, target: target, rate: rate})
	return Rate{Base: base, Target: target, Rate: rate}, nil
}

func newTestRouter(t *testing.T, store Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validation.Register(); err != nil {
		t.Fatalf("validation.Register: %v", err)
	}

	demo := user.User{ID: uuid.New(), Username: "demo", DefaultCurrency: "USD"}
	router := gin.New()
	NewHandler(store, slog.New(slog.NewTextHandler(io.Discard, nil))).
		RegisterRoutes(router.Group("/api", middleware.Identity(demo)))
	return router
}

func TestHandler_Upsert(t *testing.T) {
	stub := &stubStore{}
	router := newTestRouter(t, stub)

	tests := []struct {
		body string
		want upsertCall
	}{
		{`{"base":"eur","target":"usd","rate":1.08}`, upsertCall{"EUR", "USD", 1.08}},
		{`{"base":"GBP"}`, upsertCall{"GBP", "USD", 1}},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/api/exchange", bytes.NewBufferString(tt.body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", tt.body, rec.Code)
		}
		if got := stub.calls[len(stub.calls)-1]; got != tt.want {
			t.Fatalf("%s: upsert called with %+v, want %+v", tt.body, got, tt.want)
		}
	}
}

func TestHandler_UpsertInvalid(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	for _, body := range []string{`{"base":"euro"}`, `{"rate":0}`, `{"rate":-2}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/exchange", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", body, rec.Code)
		}
	}
}

func TestHandler_List(t *testing.T) {
	router := newTestRouter(t, &stubStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/exchange", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if want := `[{"id":1,"base":"EUR","target":"USD","rate":1.1}]`; rec.Body.String() != want {
		t.Fatalf("body = %s, want %s", rec.Body.String(), want)
	}
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	userID := uuid.New()
	mock.ExpectQuery("INSERT INTO exchange_rates (.+) ON CONFLICT").
		WithArgs(userID, "EUR", "USD", 1.1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "base", "target", "rate", "updated_at"}).
			AddRow(int64(4), "EUR", "USD", 1.1, time.Now()))

	rate, err := NewRepository(db).Upsert(context.Background(), userID, "EUR", "USD", 1.1)
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if rate.ID != 4 || rate.Rate != 1.1 {
		t.Fatalf("unexpected rate: %+v", rate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestTable(t *testing.T) {
	table := Table([]Rate{{Base: "EUR", Target: "USD", Rate: 1.1}})

	if rate, ok := table.Lookup("eur", "usd"); !ok || rate != 1.1 {
		t.Fatalf("Lookup(eur, usd) = %v, %v", rate, ok)
	}
	if _, ok := table.Lookup("USD", "EUR"); ok {
		t.Fatal("rates are directed; reverse lookup should miss")
	}
}
