// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydavid365/elasticmq/internal/adapter"
	"github.com/ydavid365/elasticmq/internal/config"
	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/internal/server"
	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/models"
)

const waitTimeout = 5 * time.Second

func intPtr(v int) *int { return &v }

// startGateway runs a gateway on a free loopback port and returns a client
// pointed at it. The gateway is stopped when the test ends.
func startGateway(t *testing.T, cfg config.ServerConfig) (*server.RunningServer, *adapter.Client) {
	t.Helper()

	s := Start(cfg.WithPort(0), logger.Nop())
	require.NoError(t, s.WaitStarted(waitTimeout))
	t.Cleanup(func() {
		assert.NoError(t, s.StopAndWait(waitTimeout))
	})

	c, err := adapter.NewClient(adapter.ClientConfig{Address: s.Addr().String(), RequestTimeout: 30 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return s, c
}

func TestGateway_MessageLifecycle(t *testing.T) {
	_, c := startGateway(t, config.DefaultServerConfig())
	ctx := context.Background()

	queueURL, err := c.CreateQueue(ctx, "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9324/000000000000/orders", queueURL)

	got, err := c.GetQueueURL(ctx, "orders")
	require.NoError(t, err)
	assert.Equal(t, queueURL, got)

	body := "line one\r\nline two <&>"
	attrs := map[string]models.MessageAttribute{
		"trace": {DataType: models.AttributeTypeString, StringValue: "t-1"},
		"blob":  {DataType: models.AttributeTypeBinary, BinaryValue: []byte{0, 1, 2}},
	}
	sent, err := c.SendMessage(ctx, queueURL, adapter.OutgoingMessage{Body: body, Attributes: attrs})
	require.NoError(t, err)
	assert.NotEmpty(t, sent.MessageID)

	received, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{
		AttributeNames:        []string{models.AttrAll},
		MessageAttributeNames: []string{models.AttrAll},
	})
	require.NoError(t, err)
	require.Len(t, received, 1)

	msg := received[0]
	assert.Equal(t, sent.MessageID, msg.MessageID)
	assert.Equal(t, body, msg.Body)
	assert.Equal(t, attrs, msg.MessageAttributes)
	assert.Equal(t, "1", msg.Attributes[models.SysAttrApproximateReceiveCount])

	again, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{})
	require.NoError(t, err)
	assert.Empty(t, again, "in-flight message must stay hidden")

	require.NoError(t, c.DeleteMessage(ctx, queueURL, msg.ReceiptHandle))

	attributes, err := c.GetQueueAttributes(ctx, queueURL)
	require.NoError(t, err)
	assert.Equal(t, "0", attributes["ApproximateNumberOfMessages"])
	assert.Equal(t, "0", attributes["ApproximateNumberOfMessagesNotVisible"])
}

func TestGateway_ChangeVisibilityRedelivers(t *testing.T) {
	_, c := startGateway(t, config.DefaultServerConfig())
	ctx := context.Background()

	queueURL, err := c.CreateQueue(ctx, "retry", map[string]string{models.AttrVisibilityTimeout: "60"})
	require.NoError(t, err)

	res, err := c.SendMessageBatch(ctx, queueURL, []adapter.BatchMessage{
		{ID: "one", OutgoingMessage: adapter.OutgoingMessage{Body: "1"}},
		{ID: "two", OutgoingMessage: adapter.OutgoingMessage{Body: "2"}},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"one", "two"}, res.Successful)
	assert.Empty(t, res.Failed)

	first, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{MaxMessages: intPtr(10)})
	require.NoError(t, err)
	require.Len(t, first, 2)

	require.NoError(t, c.ChangeMessageVisibility(ctx, queueURL, first[0].ReceiptHandle, 0))

	second, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{
		MaxMessages:    intPtr(10),
		AttributeNames: []string{models.SysAttrApproximateReceiveCount},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].MessageID, second[0].MessageID)
	assert.Equal(t, "2", second[0].Attributes[models.SysAttrApproximateReceiveCount])

	err = c.ChangeMessageVisibility(ctx, queueURL, first[0].ReceiptHandle, 5)
	var apiErr *adapter.APIError
	require.ErrorAs(t, err, &apiErr, "superseded receipt handle")
	assert.Equal(t, "AWS.SimpleQueueService.MessageNotInflight", apiErr.Code)

	err = c.DeleteMessage(ctx, queueURL, "not-a-handle")
	assert.ErrorIs(t, err, adapter.ErrReceiptHandleInvalid)

	del, err := c.DeleteMessageBatch(ctx, queueURL, map[string]string{
		"current": second[0].ReceiptHandle,
		"other":   first[1].ReceiptHandle,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"current", "other"}, del.Successful)
}

func TestGateway_LongPollWakesOnSend(t *testing.T) {
	_, c := startGateway(t, config.DefaultServerConfig())
	ctx := context.Background()

	queueURL, err := c.CreateQueue(ctx, "poll", nil)
	require.NoError(t, err)

	type result struct {
		msgs []adapter.Message
		err  error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		msgs, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{WaitTimeSeconds: intPtr(10)})
		done <- result{msgs, err}
	}()

	time.Sleep(200 * time.Millisecond)
	_, err = c.SendMessage(ctx, queueURL, adapter.OutgoingMessage{Body: "wake up"})
	require.NoError(t, err)

	select {
	case r := <-done:
		require.NoError(t, r.err)
		require.Len(t, r.msgs, 1)
		assert.Equal(t, "wake up", r.msgs[0].Body)
		assert.Less(t, time.Since(start), 10*time.Second)
	case <-time.After(15 * time.Second):
		t.Fatal("long poll did not return")
	}
}

func TestGateway_ParkedLongPollsDoNotStarveRequests(t *testing.T) {
	_, c := startGateway(t, config.DefaultServerConfig().WithWorkerCount(1))
	ctx := context.Background()

	queueURL, err := c.CreateQueue(ctx, "single-slot", nil)
	require.NoError(t, err)
	idleURL, err := c.CreateQueue(ctx, "idle", nil)
	require.NoError(t, err)

	idleDone := make(chan error, 1)
	go func() {
		_, err := c.ReceiveMessages(ctx, idleURL, adapter.ReceiveOptions{WaitTimeSeconds: intPtr(5)})
		idleDone <- err
	}()

	received := make(chan []adapter.Message, 1)
	go func() {
		msgs, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{WaitTimeSeconds: intPtr(10)})
		assert.NoError(t, err)
		received <- msgs
	}()
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	_, err = c.ListQueues(ctx, "")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second, "parked receives must not hold the only slot")

	sentAt := time.Now()
	_, err = c.SendMessage(ctx, queueURL, adapter.OutgoingMessage{Body: "wake"})
	require.NoError(t, err)

	select {
	case msgs := <-received:
		require.Len(t, msgs, 1)
		assert.Equal(t, "wake", msgs[0].Body)
		assert.Less(t, time.Since(sentAt), time.Second)
	case <-time.After(5 * time.Second):
		t.Fatal("send did not wake the parked receive")
	}
	assert.NoError(t, <-idleDone)
}

func TestGateway_StopEndsLongPoll(t *testing.T) {
	s := Start(config.DefaultServerConfig().WithPort(0), logger.Nop())
	require.NoError(t, s.WaitStarted(waitTimeout))

	c, err := adapter.NewClient(adapter.ClientConfig{Address: s.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	queueURL, err := c.CreateQueue(context.Background(), "parked", nil)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.ReceiveMessages(context.Background(), queueURL, adapter.ReceiveOptions{WaitTimeSeconds: intPtr(20)})
	}()
	time.Sleep(200 * time.Millisecond)

	start := time.Now()
	require.NoError(t, s.StopAndWait(waitTimeout))
	assert.Less(t, time.Since(start), waitTimeout)

	select {
	case <-done:
	case <-time.After(waitTimeout):
		t.Fatal("parked receive outlived the gateway")
	}
}

func TestGateway_LimitsMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    validators.LimitsMode
		wantErr bool
	}{
		{name: "strict rejects zero wait", mode: validators.Strict, wantErr: true},
		{name: "relaxed accepts zero wait", mode: validators.Relaxed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := startGateway(t, config.DefaultServerConfig().WithLimitsMode(tt.mode))
			ctx := context.Background()

			queueURL, err := c.CreateQueue(ctx, "limits", nil)
			require.NoError(t, err)

			_, err = c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{WaitTimeSeconds: intPtr(0)})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var apiErr *adapter.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, validators.CodeInvalidParameterValue, apiErr.Code)
			assert.Equal(t, "Sender", apiErr.Type)
			assert.NotEmpty(t, apiErr.RequestID)
		})
	}
}

func TestGateway_RelaxedHugeVisibilityTimeout(t *testing.T) {
	_, c := startGateway(t, config.DefaultServerConfig().WithLimitsMode(validators.Relaxed))
	ctx := context.Background()

	queueURL, err := c.CreateQueue(ctx, "forever", nil)
	require.NoError(t, err)
	_, err = c.SendMessage(ctx, queueURL, adapter.OutgoingMessage{Body: "hide me"})
	require.NoError(t, err)

	first, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{VisibilityTimeout: intPtr(9300000000)})
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := c.ReceiveMessages(ctx, queueURL, adapter.ReceiveOptions{})
	require.NoError(t, err)
	assert.Empty(t, second, "a huge visibility timeout must not wrap into the past")
}

func TestGateway_QueueErrors(t *testing.T) {
	_, c := startGateway(t, config.DefaultServerConfig())
	ctx := context.Background()

	_, err := c.GetQueueURL(ctx, "missing")
	assert.ErrorIs(t, err, adapter.ErrNonExistentQueue)

	_, err = c.CreateQueue(ctx, "dup", map[string]string{models.AttrDelaySeconds: "1"})
	require.NoError(t, err)
	_, err = c.CreateQueue(ctx, "dup", map[string]string{models.AttrDelaySeconds: "2"})
	assert.ErrorIs(t, err, adapter.ErrQueueAlreadyExists)

	queues, err := c.ListQueues(ctx, "")
	require.NoError(t, err)
	assert.Len(t, queues, 1)

	require.NoError(t, c.DeleteQueue(ctx, queues[0]))
	err = c.PurgeQueue(ctx, queues[0])
	assert.ErrorIs(t, err, adapter.ErrNonExistentQueue)
}

func TestGateway_HealthAndMetrics(t *testing.T) {
	s, c := startGateway(t, config.DefaultServerConfig())

	_, err := c.ListQueues(context.Background(), "")
	require.NoError(t, err)

	base := "http://" + s.Addr().String()

	resp, err := http.Get(base + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(metrics), `action="ListQueues"`))
	assert.Contains(t, string(metrics), "sqs_gateway_pool_busy_workers")
}
