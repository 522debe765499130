// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// WriteXML serializes data as an XML document (with the standard header)
// and writes it with the given status code and a text/xml content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func WriteXML(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := xml.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to XML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to XML: %w", err)
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(statusCode)

	n, err := w.Write([]byte(xml.Header))
	if err != nil {
		return n, err
	}
	m, err := w.Write(body)
	return n + m, err
}
