// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/mock"
	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/internal/workers"
)

// newBareHandler builds a Handler with only a nop logger, enough for the
// middlewares that do not touch the engine.
func newBareHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func testQueueURL(name string) string {
	return "http://localhost:9324/000000000000/" + name
}

type handlerFixture struct {
	engine   *mock.MockQueueEngine
	pool     *workers.Pool
	registry *prometheus.Registry
	handler  *Handler
	router   http.Handler
}

func newFixture(t *testing.T, mode validators.LimitsMode) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := mock.NewMockQueueEngine(ctrl)

	pool := workers.NewPool("handler-test", 2)
	t.Cleanup(func() { _ = pool.Shutdown(context.Background()) })

	reg := prometheus.NewRegistry()
	h := NewHandler(engine, pool, validators.NewLimits(mode), testQueueURL, reg, logger.Nop())

	return &handlerFixture{
		engine:   engine,
		pool:     pool,
		registry: reg,
		handler:  h,
		router:   h.Init(),
	}
}

// post sends params as a form body to path.
func (f *handlerFixture) post(path string, params url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(params.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "10.1.2.3:5555"

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

// get sends params in the query string to path.
func (f *handlerFixture) get(path string, params url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path+"?"+params.Encode(), nil)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

type testErrorResponse struct {
	XMLName xml.Name `xml:"ErrorResponse"`
	Error   struct {
		Type    string `xml:"Type"`
		Code    string `xml:"Code"`
		Message string `xml:"Message"`
	} `xml:"Error"`
	RequestID string `xml:"RequestId"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) testErrorResponse {
	t.Helper()

	var resp testErrorResponse
	require.NoError(t, xml.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, rr.Code)
	assert.Equal(t, code, decodeError(t, rr).Error.Code, rr.Body.String())
}

func action(name string, kv ...string) url.Values {
	v := url.Values{"Action": {name}}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Add(kv[i], kv[i+1])
	}
	return v
}

// ─────────────────────────────────────────────
// NewHandler / Init
// ─────────────────────────────────────────────

func TestNewHandler_RegistersEveryOperation(t *testing.T) {
	f := newFixture(t, validators.Strict)

	for _, name := range []string{
		"CreateQueue", "GetQueueUrl", "ListQueues", "DeleteQueue", "PurgeQueue",
		"GetQueueAttributes", "SetQueueAttributes", "SendMessage", "SendMessageBatch",
		"ReceiveMessage", "DeleteMessage", "DeleteMessageBatch",
		"ChangeMessageVisibility", "ChangeMessageVisibilityBatch",
	} {
		assert.Contains(t, f.handler.operations, name)
	}
	assert.Len(t, f.handler.operations, 14)
}

func TestNewHandler_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		newFixture(t, validators.Strict)
		newFixture(t, validators.Relaxed)
	})
}

func TestInit_Health(t *testing.T) {
	f := newFixture(t, validators.Strict)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestInit_UnsupportedMethod(t *testing.T) {
	f := newFixture(t, validators.Strict)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// ─────────────────────────────────────────────
// Action dispatch
// ─────────────────────────────────────────────

func TestServeAction_MissingAction(t *testing.T) {
	f := newFixture(t, validators.Strict)

	rr := f.post("/", url.Values{"QueueName": {"q"}})

	assertError(t, rr, http.StatusBadRequest, "MissingAction")
	assert.Equal(t, "Sender", decodeError(t, rr).Error.Type)
}

func TestServeAction_InvalidAction(t *testing.T) {
	f := newFixture(t, validators.Strict)

	rr := f.post("/", action("DoSomethingElse"))

	assertError(t, rr, http.StatusBadRequest, "InvalidAction")
	assert.Contains(t, decodeError(t, rr).Error.Message, "DoSomethingElse")
}

func TestServeAction_MalformedBody(t *testing.T) {
	f := newFixture(t, validators.Strict)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Action=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assertError(t, rr, http.StatusBadRequest, "MalformedQueryString")
}

func TestServeAction_RequestIDEchoed(t *testing.T) {
	f := newFixture(t, validators.Strict)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("Action=Nope"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(traceIDHeader, "trace-123")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-123", decodeError(t, rr).RequestID)
	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestServeAction_ResponseEnvelope(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().DeleteQueue(gomock.Any(), "orders").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/000000000000/orders", strings.NewReader("Action=DeleteQueue"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(traceIDHeader, "trace-env")
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/xml; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, `<DeleteQueueResponse xmlns="http://queue.amazonaws.com/doc/2012-11-05/">`)
	assert.Contains(t, body, "<ResponseMetadata><RequestId>trace-env</RequestId></ResponseMetadata>")
	assert.NotContains(t, body, "DeleteQueueResult")
}

func TestServeAction_QueryStringOnGet(t *testing.T) {
	f := newFixture(t, validators.Strict)
	f.engine.EXPECT().PurgeQueue(gomock.Any(), "jobs").Return(nil)

	rr := f.get("/queue/jobs", action("PurgeQueue"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<PurgeQueueResponse")
}
