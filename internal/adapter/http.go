// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ydavid365/elasticmq/internal/codec"
	"github.com/ydavid365/elasticmq/internal/logger"
	"github.com/ydavid365/elasticmq/models"
)

const defaultRequestTimeout = 30 * time.Second

// ClientConfig configures a Client.
type ClientConfig struct {
	// Address is the gateway base URL; "host:port" is read as http.
	Address string
	// RequestTimeout bounds every request and must exceed the longest long
	// poll issued. Zero means 30s.
	RequestTimeout time.Duration
}

// Client is the HTTP implementation of QueueClient.
type Client struct {
	client *resty.Client
	logger *logger.Logger
}

var _ QueueClient = (*Client)(nil)

// NewClient returns a Client for the gateway at cfg.Address.
func NewClient(cfg ClientConfig, logger *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway address: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "text/xml")

	return &Client{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call POSTs action with params to the gateway root and decodes the
// response document into result when result is not nil.
func (c *Client) call(ctx context.Context, action, queueURL string, params url.Values, result any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("Action", action)
	if queueURL != "" {
		params.Set("QueueUrl", queueURL)
	}

	req := c.client.R().
		SetContext(ctx).
		SetFormDataFromValues(params).
		SetError(&errorResponse{})
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post("/")
	if err != nil {
		return fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		c.logger.Debug().Err(err).Str("func", "*Client.call").Str("action", action).Msg("gateway returned an error")
		return err
	}
	return nil
}

type xmlAttribute struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

type xmlBatchError struct {
	ID          string `xml:"Id"`
	SenderFault bool   `xml:"SenderFault"`
	Code        string `xml:"Code"`
	Message     string `xml:"Message"`
}

type xmlMessageAttribute struct {
	Name  string `xml:"Name"`
	Value struct {
		DataType    string `xml:"DataType"`
		StringValue string `xml:"StringValue"`
		BinaryValue string `xml:"BinaryValue"`
	} `xml:"Value"`
}

// CreateQueue implements QueueClient.
func (c *Client) CreateQueue(ctx context.Context, name string, attributes map[string]string) (string, error) {
	var out struct {
		QueueURL string `xml:"CreateQueueResult>QueueUrl"`
	}

	params := url.Values{"QueueName": {name}}
	setQueueAttributes(params, attributes)

	if err := c.call(ctx, "CreateQueue", "", params, &out); err != nil {
		return "", err
	}
	return out.QueueURL, nil
}

// GetQueueURL implements QueueClient.
func (c *Client) GetQueueURL(ctx context.Context, name string) (string, error) {
	var out struct {
		QueueURL string `xml:"GetQueueUrlResult>QueueUrl"`
	}

	if err := c.call(ctx, "GetQueueUrl", "", url.Values{"QueueName": {name}}, &out); err != nil {
		return "", err
	}
	return out.QueueURL, nil
}

// ListQueues implements QueueClient.
func (c *Client) ListQueues(ctx context.Context, prefix string) ([]string, error) {
	var out struct {
		QueueURLs []string `xml:"ListQueuesResult>QueueUrl"`
	}

	params := url.Values{}
	if prefix != "" {
		params.Set("QueueNamePrefix", prefix)
	}
	if err := c.call(ctx, "ListQueues", "", params, &out); err != nil {
		return nil, err
	}
	return out.QueueURLs, nil
}

// DeleteQueue implements QueueClient.
func (c *Client) DeleteQueue(ctx context.Context, queueURL string) error {
	return c.call(ctx, "DeleteQueue", queueURL, nil, nil)
}

// PurgeQueue implements QueueClient.
func (c *Client) PurgeQueue(ctx context.Context, queueURL string) error {
	return c.call(ctx, "PurgeQueue", queueURL, nil, nil)
}

// GetQueueAttributes implements QueueClient.
func (c *Client) GetQueueAttributes(ctx context.Context, queueURL string, names ...string) (map[string]string, error) {
	var out struct {
		Attributes []xmlAttribute `xml:"GetQueueAttributesResult>Attribute"`
	}

	if len(names) == 0 {
		names = []string{models.AttrAll}
	}
	params := url.Values{}
	setIndexed(params, "AttributeName", names)

	if err := c.call(ctx, "GetQueueAttributes", queueURL, params, &out); err != nil {
		return nil, err
	}

	attrs := make(map[string]string, len(out.Attributes))
	for _, a := range out.Attributes {
		attrs[a.Name] = a.Value
	}
	return attrs, nil
}

// SetQueueAttributes implements QueueClient.
func (c *Client) SetQueueAttributes(ctx context.Context, queueURL string, attributes map[string]string) error {
	params := url.Values{}
	setQueueAttributes(params, attributes)
	return c.call(ctx, "SetQueueAttributes", queueURL, params, nil)
}

// SendMessage implements QueueClient. The returned digests are checked
// against msg.
func (c *Client) SendMessage(ctx context.Context, queueURL string, msg OutgoingMessage) (SendResult, error) {
	var out struct {
		MessageID              string `xml:"SendMessageResult>MessageId"`
		MD5OfMessageBody       string `xml:"SendMessageResult>MD5OfMessageBody"`
		MD5OfMessageAttributes string `xml:"SendMessageResult>MD5OfMessageAttributes"`
	}

	params := url.Values{}
	setOutgoingMessage(params, "", msg)

	if err := c.call(ctx, "SendMessage", queueURL, params, &out); err != nil {
		return SendResult{}, err
	}

	result := SendResult{
		MessageID:              out.MessageID,
		MD5OfMessageBody:       out.MD5OfMessageBody,
		MD5OfMessageAttributes: out.MD5OfMessageAttributes,
	}
	if err := verifySent(msg, result.MD5OfMessageBody, result.MD5OfMessageAttributes); err != nil {
		return result, err
	}
	return result, nil
}

// SendMessageBatch implements QueueClient.
func (c *Client) SendMessageBatch(ctx context.Context, queueURL string, entries []BatchMessage) (BatchResult, error) {
	var out struct {
		Entries []struct {
			ID                     string `xml:"Id"`
			MessageID              string `xml:"MessageId"`
			MD5OfMessageBody       string `xml:"MD5OfMessageBody"`
			MD5OfMessageAttributes string `xml:"MD5OfMessageAttributes"`
		} `xml:"SendMessageBatchResult>SendMessageBatchResultEntry"`
		Failed []xmlBatchError `xml:"SendMessageBatchResult>BatchResultErrorEntry"`
	}

	params := url.Values{}
	byID := make(map[string]OutgoingMessage, len(entries))
	for i, e := range entries {
		prefix := "SendMessageBatchRequestEntry." + strconv.Itoa(i+1) + "."
		params.Set(prefix+"Id", e.ID)
		setOutgoingMessage(params, prefix, e.OutgoingMessage)
		byID[e.ID] = e.OutgoingMessage
	}

	if err := c.call(ctx, "SendMessageBatch", queueURL, params, &out); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Failed: toBatchFailures(out.Failed)}
	for _, e := range out.Entries {
		if err := verifySent(byID[e.ID], e.MD5OfMessageBody, e.MD5OfMessageAttributes); err != nil {
			return result, fmt.Errorf("entry %s: %w", e.ID, err)
		}
		result.Successful = append(result.Successful, e.ID)
	}
	return result, nil
}

// ReceiveMessages implements QueueClient. Body digests, and attribute
// digests where attributes were returned, are checked.
func (c *Client) ReceiveMessages(ctx context.Context, queueURL string, opts ReceiveOptions) ([]Message, error) {
	var out struct {
		Messages []struct {
			MessageID              string                `xml:"MessageId"`
			ReceiptHandle          string                `xml:"ReceiptHandle"`
			MD5OfBody              string                `xml:"MD5OfBody"`
			Body                   string                `xml:"Body"`
			MD5OfMessageAttributes string                `xml:"MD5OfMessageAttributes"`
			Attributes             []xmlAttribute        `xml:"Attribute"`
			MessageAttributes      []xmlMessageAttribute `xml:"MessageAttribute"`
		} `xml:"ReceiveMessageResult>Message"`
	}

	params := url.Values{}
	setOptionalInt(params, "MaxNumberOfMessages", opts.MaxMessages)
	setOptionalInt(params, "VisibilityTimeout", opts.VisibilityTimeout)
	setOptionalInt(params, "WaitTimeSeconds", opts.WaitTimeSeconds)
	setIndexed(params, "AttributeName", opts.AttributeNames)
	setIndexed(params, "MessageAttributeName", opts.MessageAttributeNames)

	if err := c.call(ctx, "ReceiveMessage", queueURL, params, &out); err != nil {
		return nil, err
	}

	messages := make([]Message, 0, len(out.Messages))
	for _, m := range out.Messages {
		if got := codec.ChecksumString(m.Body); got != m.MD5OfBody {
			return nil, fmt.Errorf("%w: message %s body digest %s, computed %s", ErrChecksumMismatch, m.MessageID, m.MD5OfBody, got)
		}

		msg := Message{
			MessageID:     m.MessageID,
			ReceiptHandle: m.ReceiptHandle,
			Body:          m.Body,
			Attributes:    make(map[string]string, len(m.Attributes)),
		}
		for _, a := range m.Attributes {
			msg.Attributes[a.Name] = a.Value
		}

		if len(m.MessageAttributes) > 0 {
			attrs, err := decodeMessageAttributes(m.MessageAttributes)
			if err != nil {
				return nil, fmt.Errorf("message %s: %w", m.MessageID, err)
			}
			if got := codec.AttributesChecksum(attrs); got != m.MD5OfMessageAttributes {
				return nil, fmt.Errorf("%w: message %s attribute digest %s, computed %s", ErrChecksumMismatch, m.MessageID, m.MD5OfMessageAttributes, got)
			}
			msg.MessageAttributes = attrs
		}

		messages = append(messages, msg)
	}
	return messages, nil
}

// DeleteMessage implements QueueClient.
func (c *Client) DeleteMessage(ctx context.Context, queueURL, receiptHandle string) error {
	return c.call(ctx, "DeleteMessage", queueURL, url.Values{"ReceiptHandle": {receiptHandle}}, nil)
}

// DeleteMessageBatch implements QueueClient. receiptHandles maps entry ids
// to receipt handles.
func (c *Client) DeleteMessageBatch(ctx context.Context, queueURL string, receiptHandles map[string]string) (BatchResult, error) {
	var out struct {
		Entries []struct {
			ID string `xml:"Id"`
		} `xml:"DeleteMessageBatchResult>DeleteMessageBatchResultEntry"`
		Failed []xmlBatchError `xml:"DeleteMessageBatchResult>BatchResultErrorEntry"`
	}

	params := url.Values{}
	for i, id := range slices.Sorted(maps.Keys(receiptHandles)) {
		prefix := "DeleteMessageBatchRequestEntry." + strconv.Itoa(i+1) + "."
		params.Set(prefix+"Id", id)
		params.Set(prefix+"ReceiptHandle", receiptHandles[id])
	}

	if err := c.call(ctx, "DeleteMessageBatch", queueURL, params, &out); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Failed: toBatchFailures(out.Failed)}
	for _, e := range out.Entries {
		result.Successful = append(result.Successful, e.ID)
	}
	return result, nil
}

// ChangeMessageVisibility implements QueueClient.
func (c *Client) ChangeMessageVisibility(ctx context.Context, queueURL, receiptHandle string, timeoutSeconds int) error {
	params := url.Values{
		"ReceiptHandle":     {receiptHandle},
		"VisibilityTimeout": {strconv.Itoa(timeoutSeconds)},
	}
	return c.call(ctx, "ChangeMessageVisibility", queueURL, params, nil)
}

func setQueueAttributes(params url.Values, attributes map[string]string) {
	for i, name := range slices.Sorted(maps.Keys(attributes)) {
		prefix := "Attribute." + strconv.Itoa(i+1) + "."
		params.Set(prefix+"Name", name)
		params.Set(prefix+"Value", attributes[name])
	}
}

func setIndexed(params url.Values, prefix string, values []string) {
	for i, v := range values {
		params.Set(prefix+"."+strconv.Itoa(i+1), v)
	}
}

func setOptionalInt(params url.Values, name string, v *int) {
	if v != nil {
		params.Set(name, strconv.Itoa(*v))
	}
}

// setOutgoingMessage writes msg under prefix ("" for a single send,
// "SendMessageBatchRequestEntry.N." inside a batch).
func setOutgoingMessage(params url.Values, prefix string, msg OutgoingMessage) {
	params.Set(prefix+"MessageBody", msg.Body)
	setOptionalInt(params, prefix+"DelaySeconds", msg.DelaySeconds)

	for i, name := range slices.Sorted(maps.Keys(msg.Attributes)) {
		attr := msg.Attributes[name]
		p := prefix + "MessageAttribute." + strconv.Itoa(i+1) + "."
		params.Set(p+"Name", name)
		params.Set(p+"Value.DataType", attr.DataType)
		if strings.HasPrefix(attr.DataType, models.AttributeTypeBinary) {
			params.Set(p+"Value.BinaryValue", base64.StdEncoding.EncodeToString(attr.BinaryValue))
		} else {
			params.Set(p+"Value.StringValue", attr.StringValue)
		}
	}
}

func verifySent(msg OutgoingMessage, bodyDigest, attributesDigest string) error {
	if got := codec.ChecksumString(msg.Body); got != bodyDigest {
		return fmt.Errorf("%w: body digest %s, computed %s", ErrChecksumMismatch, bodyDigest, got)
	}
	if got := codec.AttributesChecksum(msg.Attributes); got != attributesDigest {
		return fmt.Errorf("%w: attribute digest %s, computed %s", ErrChecksumMismatch, attributesDigest, got)
	}
	return nil
}

func decodeMessageAttributes(raw []xmlMessageAttribute) (map[string]models.MessageAttribute, error) {
	attrs := make(map[string]models.MessageAttribute, len(raw))
	for _, a := range raw {
		attr := models.MessageAttribute{DataType: a.Value.DataType}
		if strings.HasPrefix(attr.DataType, models.AttributeTypeBinary) {
			b, err := base64.StdEncoding.DecodeString(a.Value.BinaryValue)
			if err != nil {
				return nil, fmt.Errorf("decode binary attribute %s: %w", a.Name, err)
			}
			attr.BinaryValue = b
		} else {
			attr.StringValue = a.Value.StringValue
		}
		attrs[a.Name] = attr
	}
	return attrs, nil
}

func toBatchFailures(raw []xmlBatchError) []BatchFailure {
	var out []BatchFailure
	for _, f := range raw {
		out = append(out, BatchFailure{ID: f.ID, Code: f.Code, Message: f.Message, SenderFault: f.SenderFault})
	}
	return out
}
