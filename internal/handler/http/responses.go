// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/xml"

	"github.com/ydavid365/elasticmq/internal/codec"
)

// sqsNamespace is the XML namespace of every query protocol response.
const sqsNamespace = "http://queue.amazonaws.com/doc/2012-11-05/"

type responseMetadata struct {
	RequestID string `xml:"RequestId"`
}

// actionResponse is the <{Action}Response> envelope. Result carries its own
// element name through an XMLName field and is omitted when nil.
type actionResponse struct {
	XMLName  xml.Name
	Xmlns    string           `xml:"xmlns,attr"`
	Result   any              `xml:",omitempty"`
	Metadata responseMetadata `xml:"ResponseMetadata"`
}

func newActionResponse(action, requestID string, result any) actionResponse {
	return actionResponse{
		XMLName:  xml.Name{Local: action + "Response"},
		Xmlns:    sqsNamespace,
		Result:   result,
		Metadata: responseMetadata{RequestID: requestID},
	}
}

type errorResponse struct {
	XMLName   xml.Name  `xml:"ErrorResponse"`
	Xmlns     string    `xml:"xmlns,attr"`
	Error     errorBody `xml:"Error"`
	RequestID string    `xml:"RequestId"`
}

type errorBody struct {
	Type    string `xml:"Type"`
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
	Detail  string `xml:"Detail"`
}

type attribute struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

type createQueueResult struct {
	XMLName  xml.Name `xml:"CreateQueueResult"`
	QueueURL string   `xml:"QueueUrl"`
}

type getQueueURLResult struct {
	XMLName  xml.Name `xml:"GetQueueUrlResult"`
	QueueURL string   `xml:"QueueUrl"`
}

type listQueuesResult struct {
	XMLName   xml.Name `xml:"ListQueuesResult"`
	QueueURLs []string `xml:"QueueUrl"`
}

type getQueueAttributesResult struct {
	XMLName    xml.Name    `xml:"GetQueueAttributesResult"`
	Attributes []attribute `xml:"Attribute"`
}

type sendMessageResult struct {
	XMLName                xml.Name `xml:"SendMessageResult"`
	MD5OfMessageBody       string   `xml:"MD5OfMessageBody"`
	MD5OfMessageAttributes string   `xml:"MD5OfMessageAttributes,omitempty"`
	MessageID              string   `xml:"MessageId"`
}

type sendMessageBatchResultEntry struct {
	ID                     string `xml:"Id"`
	MessageID              string `xml:"MessageId"`
	MD5OfMessageBody       string `xml:"MD5OfMessageBody"`
	MD5OfMessageAttributes string `xml:"MD5OfMessageAttributes,omitempty"`
}

type sendMessageBatchResult struct {
	XMLName xml.Name                      `xml:"SendMessageBatchResult"`
	Entries []sendMessageBatchResultEntry `xml:"SendMessageBatchResultEntry"`
	Failed  []batchResultErrorEntry       `xml:"BatchResultErrorEntry"`
}

// batchResultErrorEntry reports one failed entry of a batch request.
type batchResultErrorEntry struct {
	ID          string `xml:"Id"`
	SenderFault bool   `xml:"SenderFault"`
	Code        string `xml:"Code"`
	Message     string `xml:"Message"`
}

type batchResultEntry struct {
	ID string `xml:"Id"`
}

type deleteMessageBatchResult struct {
	XMLName xml.Name                `xml:"DeleteMessageBatchResult"`
	Entries []batchResultEntry      `xml:"DeleteMessageBatchResultEntry"`
	Failed  []batchResultErrorEntry `xml:"BatchResultErrorEntry"`
}

type changeMessageVisibilityBatchResult struct {
	XMLName xml.Name                `xml:"ChangeMessageVisibilityBatchResult"`
	Entries []batchResultEntry      `xml:"ChangeMessageVisibilityBatchResultEntry"`
	Failed  []batchResultErrorEntry `xml:"BatchResultErrorEntry"`
}

type receiveMessageResult struct {
	XMLName  xml.Name         `xml:"ReceiveMessageResult"`
	Messages []receivedMessage `xml:"Message"`
}

type receivedMessage struct {
	MessageID              string             `xml:"MessageId"`
	ReceiptHandle          string             `xml:"ReceiptHandle"`
	MD5OfBody              string             `xml:"MD5OfBody"`
	Body                   codec.XMLText      `xml:"Body"`
	MD5OfMessageAttributes string             `xml:"MD5OfMessageAttributes,omitempty"`
	Attributes             []attribute        `xml:"Attribute"`
	MessageAttributes      []messageAttribute `xml:"MessageAttribute"`
}

type messageAttribute struct {
	Name  string                `xml:"Name"`
	Value messageAttributeValue `xml:"Value"`
}

// messageAttributeValue carries BinaryValue already base64 encoded;
// encoding/xml would write a []byte verbatim.
type messageAttributeValue struct {
	DataType    string `xml:"DataType"`
	StringValue string `xml:"StringValue,omitempty"`
	BinaryValue string `xml:"BinaryValue,omitempty"`
}
