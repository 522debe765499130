// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/internal/workers"
	"github.com/ydavid365/elasticmq/models"
)

// ---- withAction ----

func TestWithAction(t *testing.T) {
	h := newBareHandler()

	tests := []struct {
		name       string
		req        *http.Request
		wantAction string
		wantErr    bool
	}{
		{
			name:       "query string",
			req:        httptest.NewRequest(http.MethodGet, "/?Action=ListQueues", nil),
			wantAction: "ListQueues",
		},
		{
			name: "form body",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Action=CreateQueue&QueueName=q"))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			}(),
			wantAction: "CreateQueue",
		},
		{
			name: "malformed body",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Action=%zz"))
				r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return r
			}(),
			wantErr: true,
		},
		{
			name: "no action",
			req:  httptest.NewRequest(http.MethodGet, "/", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var info *requestInfo
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				info = requestInfoFromContext(r.Context())
			})

			h.withAction(next).ServeHTTP(httptest.NewRecorder(), tt.req)

			require.NotNil(t, info)
			assert.Equal(t, tt.wantAction, info.action)
			assert.Equal(t, tt.wantErr, info.formErr != nil)
		})
	}
}

func TestRequestInfoFromContext_Missing(t *testing.T) {
	info := requestInfoFromContext(context.Background())

	require.NotNil(t, info)
	assert.Empty(t, actionFromContext(context.Background()))
}

// ---- withDispatch ----

// failingExecutor rejects every submission with err.
type failingExecutor struct {
	err error
}

func (e failingExecutor) Submit(context.Context, func()) error { return e.err }
func (e failingExecutor) Shutdown(context.Context) error      { return nil }

func TestWithDispatch_RunsOnExecutor(t *testing.T) {
	pool := workers.NewPool("dispatch", 1)
	defer pool.Shutdown(context.Background())

	h := newBareHandler()
	h.executor = pool

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
	})

	rr := httptest.NewRecorder()
	h.withDispatch(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestWithDispatch_SubmitFails(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"pool stopped", workers.ErrPoolStopped, http.StatusServiceUnavailable, "ServiceUnavailable"},
		{"request canceled", context.Canceled, http.StatusBadRequest, "RequestCanceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newBareHandler()
			h.executor = failingExecutor{err: tt.err}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("next must not run")
			})

			rr := httptest.NewRecorder()
			h.withDispatch(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assertError(t, rr, tt.status, tt.code)
		})
	}
}

func TestDispatch_StoppedPool(t *testing.T) {
	f := newFixture(t, validators.Strict)
	require.NoError(t, f.pool.Shutdown(context.Background()))

	rr := f.post("/", action("ListQueues"))

	assertError(t, rr, http.StatusServiceUnavailable, "ServiceUnavailable")
}

func TestDispatch_ConcurrentRequests(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().ListQueues(gomock.Any(), "").Return(nil, nil).Times(20)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr := f.post("/", action("ListQueues"))
			assert.Equal(t, http.StatusOK, rr.Code)
		}()
	}
	wg.Wait()
}

// ---- withFaultBarrier ----

func TestWithFaultBarrier_RecoversPanic(t *testing.T) {
	h := newBareHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withFaultBarrier(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assertError(t, rr, http.StatusInternalServerError, "InternalError")
	resp := decodeError(t, rr)
	assert.Equal(t, "Receiver", resp.Error.Type)
	assert.NotContains(t, resp.Error.Message, "boom")
}

func TestWithFaultBarrier_PanicAfterHeaderSent(t *testing.T) {
	h := newBareHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<partial/>"))
		panic("late boom")
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.withFaultBarrier(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<partial/>", rr.Body.String(), "no error document may follow a sent response")
}

func TestFaultBarrier_EnginePanicKeepsServing(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().ListQueues(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) ([]models.Queue, error) {
			panic("engine exploded")
		})
	f.engine.EXPECT().ListQueues(gomock.Any(), gomock.Any()).Return(nil, nil)

	rr := f.post("/", action("ListQueues"))
	assertError(t, rr, http.StatusInternalServerError, "InternalError")

	rr = f.post("/", action("ListQueues"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOperation_UnexpectedErrorIsInternal(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().ListQueues(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk on fire"))

	rr := f.post("/", action("ListQueues"))

	assertError(t, rr, http.StatusInternalServerError, "InternalError")
	assert.NotContains(t, rr.Body.String(), "disk on fire")
}

// ---- withMetrics ----

func TestWithMetrics_CountsByActionAndCode(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().ListQueues(gomock.Any(), gomock.Any()).Return(nil, nil)

	f.post("/", action("ListQueues"))
	f.post("/", action("CreateQueue"))
	f.post("/", action("Bogus"))
	f.get("/health", nil)

	total := f.handler.metrics.requestsTotal
	assert.InDelta(t, 1, testutil.ToFloat64(total.WithLabelValues("ListQueues", "200", "")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(total.WithLabelValues("CreateQueue", "400", validators.CodeMissingParameter)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(total.WithLabelValues("unknown", "400", "InvalidAction")), 0)
	assert.Equal(t, 3, testutil.CollectAndCount(total))
	assert.InDelta(t, 0, testutil.ToFloat64(f.handler.metrics.requestsInFlight), 0)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().ListQueues(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.post("/", action("ListQueues"))

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `sqs_gateway_requests_total{action="ListQueues",error_code="",status="200"} 1`)
	assert.Contains(t, rr.Body.String(), "sqs_gateway_request_duration_seconds")
}

func TestWithMetrics_InFlight(t *testing.T) {
	f := newFixture(t, validators.Strict)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.engine.EXPECT().ListQueues(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) ([]models.Queue, error) {
			close(entered)
			<-release
			return nil, nil
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.post("/", action("ListQueues"))
	}()

	<-entered
	assert.InDelta(t, 1, testutil.ToFloat64(f.handler.metrics.requestsInFlight), 0)
	close(release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not finish")
	}
	assert.InDelta(t, 0, testutil.ToFloat64(f.handler.metrics.requestsInFlight), 0)
}
