// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/xml"
	"strings"
)

const carriageReturn = "\r"

// NodeKind tells a text run from a carriage-return character reference.
type NodeKind int

const (
	// TextNode is a run of text containing no carriage return.
	TextNode NodeKind = iota
	// CarriageReturnNode stands for a single carriage return emitted as a
	// numeric character reference.
	CarriageReturnNode
)

// Node is one piece of XML element content.
type Node struct {
	Kind NodeKind
	Text string
}

// Nodes is XML element content produced by EncodeForXMLTransport.
type Nodes []Node

// EncodeForXMLTransport splits text on carriage returns. Text without one
// becomes a single text node equal to the input. Otherwise every pair of
// adjacent segments is separated by a carriage-return reference, and no
// reference follows the last segment, so "\r" yields two empty text nodes
// around one reference.
//
// Clients parse bare CRs in element content as line breaks and normalise
// them away, so the reference is what keeps message bodies byte-exact.
func EncodeForXMLTransport(text string) Nodes {
	segments := strings.Split(text, carriageReturn)
	if len(segments) == 1 {
		return Nodes{{Kind: TextNode, Text: text}}
	}

	nodes := make(Nodes, 0, len(segments)*2-1)
	for i, segment := range segments {
		if i > 0 {
			nodes = append(nodes, Node{Kind: CarriageReturnNode})
		}
		nodes = append(nodes, Node{Kind: TextNode, Text: segment})
	}

	return nodes
}

// String reassembles the original text.
func (n Nodes) String() string {
	var b strings.Builder
	for _, node := range n {
		if node.Kind == CarriageReturnNode {
			b.WriteString(carriageReturn)
			continue
		}
		b.WriteString(node.Text)
	}
	return b.String()
}

// XMLText is a string field that is written through EncodeForXMLTransport
// when marshalled with encoding/xml.
type XMLText string

// MarshalXML implements xml.Marshaler. Text nodes are escaped as regular
// character data, carriage-return nodes become the &#xD; reference.
func (t XMLText) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, node := range EncodeForXMLTransport(string(t)) {
		data := node.Text
		if node.Kind == CarriageReturnNode {
			data = carriageReturn
		}
		if data == "" {
			continue
		}
		if err := e.EncodeToken(xml.CharData(data)); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
