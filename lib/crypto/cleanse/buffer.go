// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package cleanse

// SecureBuffer owns a byte slice holding secret material and wipes it
// when closed. Use it with defer so that every return path wipes:
//
//	buf := cleanse.NewSecureBuffer(32)
//	defer buf.Close()
type SecureBuffer struct {
	b []byte
}

// NewSecureBuffer allocates a zeroed buffer of n bytes.
func NewSecureBuffer(n int) *SecureBuffer {
	if n < 0 {
		n = 0
	}
	return &SecureBuffer{b: make([]byte, n)}
}

// Bytes returns the underlying slice. It must not be retained past Close.
func (s *SecureBuffer) Bytes() []byte {
	return s.b
}

// Len returns the buffer length, zero once closed.
func (s *SecureBuffer) Len() int {
	return len(s.b)
}

// Close wipes the buffer and releases it. It is safe to call more
// than once.
func (s *SecureBuffer) Close() {
	Cleanse(s.b)
	s.b = nil
}
