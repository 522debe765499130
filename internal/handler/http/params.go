// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"maps"
	"math"
	"net"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ydavid365/elasticmq/internal/validators"
	"github.com/ydavid365/elasticmq/models"
)

const codeInvalidAddress = "InvalidAddress"

func missingParameter(name string) error {
	return validators.NewValidationError(validators.CodeMissingParameter, "The request must contain the parameter %s.", name)
}

// requiredParam returns the value of name or a MissingParameter error.
func requiredParam(form url.Values, name string) (string, error) {
	v := form.Get(name)
	if v == "" {
		return "", missingParameter(name)
	}
	return v, nil
}

// optionalInt parses an integer parameter; absent yields nil.
func optionalInt(form url.Values, name string) (*int, error) {
	raw := form.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, validators.NewValidationError(validators.CodeInvalidParameterValue,
			"Value %s for parameter %s is invalid. Reason: must be an integer.", raw, name)
	}
	return &n, nil
}

// maxSeconds is the largest whole number of seconds a time.Duration holds.
const maxSeconds = math.MaxInt64 / int64(time.Second)

// durationOf converts n seconds to a Duration, saturating at maxSeconds so
// that Relaxed limits cannot wrap a timeout into the past.
func durationOf(n int) time.Duration {
	if int64(n) > maxSeconds {
		return time.Duration(maxSeconds) * time.Second
	}
	return time.Duration(n) * time.Second
}

func seconds(n *int) *time.Duration {
	if n == nil {
		return nil
	}
	d := durationOf(*n)
	return &d
}

// queueNameFromRequest resolves the target queue from the request path
// ("/{account}/{queue}", "/queue/{queue}") or, on "/", from QueueUrl.
func queueNameFromRequest(r *http.Request) (string, error) {
	if name := chi.URLParam(r, "queue"); name != "" {
		return name, nil
	}

	queueURL, err := requiredParam(r.Form, "QueueUrl")
	if err != nil {
		return "", err
	}

	u, err := url.Parse(queueURL)
	if err != nil {
		return "", validators.NewValidationError(codeInvalidAddress, "The address %s is not valid for this endpoint.", queueURL)
	}
	name := path.Base(strings.TrimRight(u.Path, "/"))
	if name == "" || name == "." || name == "/" {
		return "", validators.NewValidationError(codeInvalidAddress, "The address %s is not valid for this endpoint.", queueURL)
	}
	return name, nil
}

// indexedParams groups "<prefix>.<n>.<rest>" parameters by n, in ascending
// order. Inside a group the keys are "<rest>"; a bare "<prefix>.<n>" is
// stored under the empty key.
func indexedParams(form url.Values, prefix string) []url.Values {
	groups := make(map[int]url.Values)
	for key, values := range form {
		rest, ok := strings.CutPrefix(key, prefix+".")
		if !ok {
			continue
		}
		idx, sub, _ := strings.Cut(rest, ".")
		n, err := strconv.Atoi(idx)
		if err != nil || n < 1 {
			continue
		}
		group, ok := groups[n]
		if !ok {
			group = url.Values{}
			groups[n] = group
		}
		group[sub] = values
	}

	out := make([]url.Values, 0, len(groups))
	for _, n := range slices.Sorted(maps.Keys(groups)) {
		out = append(out, groups[n])
	}
	return out
}

// indexedList returns the values of "<prefix>.<n>" parameters in order.
func indexedList(form url.Values, prefix string) []string {
	groups := indexedParams(form, prefix)
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if v := g.Get(""); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// queueAttributeParams reads Attribute.N.Name / Attribute.N.Value pairs.
func queueAttributeParams(form url.Values) map[string]string {
	attrs := make(map[string]string)
	for _, g := range indexedParams(form, "Attribute") {
		if name := g.Get("Name"); name != "" {
			attrs[name] = g.Get("Value")
		}
	}
	return attrs
}

// messageAttributeParams reads MessageAttribute.N.{Name,Value.DataType,
// Value.StringValue,Value.BinaryValue}. Binary values are base64 encoded on
// the wire.
func messageAttributeParams(form url.Values) (map[string]models.MessageAttribute, error) {
	groups := indexedParams(form, "MessageAttribute")
	if len(groups) == 0 {
		return nil, nil
	}

	attrs := make(map[string]models.MessageAttribute, len(groups))
	for _, g := range groups {
		name := g.Get("Name")
		if name == "" {
			return nil, missingParameter("MessageAttribute.Name")
		}
		if _, dup := attrs[name]; dup {
			return nil, validators.NewValidationError(validators.CodeInvalidParameterValue,
				"Message attribute name %s is repeated.", name)
		}

		attr := models.MessageAttribute{DataType: g.Get("Value.DataType")}
		if strings.HasPrefix(attr.DataType, models.AttributeTypeBinary) {
			raw, err := base64.StdEncoding.DecodeString(g.Get("Value.BinaryValue"))
			if err != nil {
				return nil, validators.NewValidationError(validators.CodeInvalidParameterValue,
					"Message attribute %s has an invalid binary value.", name)
			}
			attr.BinaryValue = raw
		} else {
			attr.StringValue = g.Get("Value.StringValue")
		}
		attrs[name] = attr
	}
	return attrs, nil
}

// applyQueueAttributes validates the settable queue attributes in raw and
// applies them on top of base.
func applyQueueAttributes(limits validators.Limits, base models.QueueAttributes, raw map[string]string) (models.QueueAttributes, error) {
	attrs := base
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		value := raw[name]

		var validate func(*int) error
		var target *time.Duration
		switch name {
		case models.AttrVisibilityTimeout:
			validate, target = limits.ValidateVisibilityTimeout, &attrs.VisibilityTimeout
		case models.AttrDelaySeconds:
			validate, target = limits.ValidateDelaySeconds, &attrs.DelaySeconds
		case models.AttrReceiveMessageWaitTimeSeconds:
			validate, target = limits.ValidateQueueWaitTime, &attrs.ReceiveMessageWaitTime
		case models.AttrMessageRetentionPeriod:
			validate, target = limits.ValidateRetentionPeriod, &attrs.MessageRetentionPeriod
		case models.AttrMaximumMessageSize:
			validate = limits.ValidateMaximumMessageSize
		default:
			return models.QueueAttributes{}, validators.NewValidationError(validators.CodeInvalidAttributeName,
				"Unknown Attribute %s.", name)
		}

		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return models.QueueAttributes{}, validators.NewValidationError(validators.CodeInvalidParameterValue,
				"Invalid value for the parameter %s.", name)
		}
		if err = validate(&n); err != nil {
			return models.QueueAttributes{}, err
		}

		if target != nil {
			*target = durationOf(n)
		} else {
			attrs.MaximumMessageSize = n
		}
	}
	return attrs, nil
}

// senderID is the client address recorded as the SenderId system attribute.
func senderID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
