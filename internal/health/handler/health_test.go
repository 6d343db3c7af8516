package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	kafka_middleware "turismo/pkg/kafka/middleware"
	"turismo/pkg/logger"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context, *readpref.ReadPref) error {
	return p.err
}

func serve(h *HealthHandler, path string) *httptest.ResponseRecorder {
	router := httprouter.New()
	h.RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth_EventsDisabled(t *testing.T) {
	rec := serve(NewHealthHandler(fakePinger{}, nil, logger.Discard()), "/health")

	var resp struct {
		Status string `json:"status"`
		Events struct {
			Enabled   bool  `json:"enabled"`
			Published int64 `json:"published"`
		} `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Code != http.StatusOK || resp.Status != "ok" || resp.Events.Enabled {
		t.Errorf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestHealth_ReportsProducerMetrics(t *testing.T) {
	metrics := kafka_middleware.NewMetrics()
	metrics.MessagesPublished = 3
	metrics.MessagesPublishedFailed = 1

	rec := serve(NewHealthHandler(fakePinger{}, metrics, logger.Discard()), "/health")

	var resp struct {
		Events struct {
			Enabled   bool  `json:"enabled"`
			Published int64 `json:"published"`
			Failed    int64 `json:"failed"`
		} `json:"events"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Events.Enabled || resp.Events.Published != 3 || resp.Events.Failed != 1 {
		t.Errorf("unexpected events %+v", resp.Events)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{"database up", nil, http.StatusOK, "ready"},
		{"database down", errors.New("no reachable servers"), http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHealthHandler(fakePinger{err: tt.pingErr}, nil, logger.Discard()), "/ready")

			var resp HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if rec.Code != tt.wantStatus || resp.Status != tt.wantBody {
				t.Errorf("expected %d %s, got %d %s", tt.wantStatus, tt.wantBody, rec.Code, resp.Status)
			}
		})
	}
}
