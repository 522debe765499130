// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"io"
	"slices"
	"strings"

	"github.com/ydavid365/elasticmq/models"
)

// ChecksumLength is the length of every checksum returned by this package.
const ChecksumLength = md5.Size * 2

const (
	transportString byte = 1
	transportBinary byte = 2
)

// Checksum returns the lowercase hex MD5 digest of content. The result is
// always ChecksumLength characters long.
func Checksum(content []byte) string {
	sum := md5.Sum(content)
	return hex.EncodeToString(sum[:])
}

// ChecksumString returns the checksum of the UTF-8 bytes of s. Go strings
// carry their bytes as-is, so clients computing MD5 over the UTF-8 encoding
// of the same text get the same digest.
func ChecksumString(s string) string {
	return Checksum([]byte(s))
}

// AttributesChecksum computes MD5OfMessageAttributes: attributes are sorted
// by name and each one contributes its length-prefixed name, data type and a
// transport byte followed by the length-prefixed value. An empty set yields
// an empty string, as SQS omits the element in that case.
func AttributesChecksum(attributes map[string]models.MessageAttribute) string {
	if len(attributes) == 0 {
		return ""
	}

	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	slices.Sort(names)

	h := md5.New()
	for _, name := range names {
		attr := attributes[name]
		writeLengthPrefixed(h, []byte(name))
		writeLengthPrefixed(h, []byte(attr.DataType))
		if isBinaryType(attr.DataType) {
			h.Write([]byte{transportBinary})
			writeLengthPrefixed(h, attr.BinaryValue)
		} else {
			h.Write([]byte{transportString})
			writeLengthPrefixed(h, []byte(attr.StringValue))
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeLengthPrefixed(w io.Writer, b []byte) {
	var size [4]byte
	binary.BigEndian.PutUint32(size[:], uint32(len(b)))
	w.Write(size[:])
	w.Write(b)
}

func isBinaryType(dataType string) bool {
	return strings.HasPrefix(dataType, models.AttributeTypeBinary)
}
