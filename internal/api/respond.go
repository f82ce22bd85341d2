// Package api holds the response envelope shared by the HTTP handlers.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// ContentTypeMsgpack is the media type clients send in Accept to receive
// MessagePack instead of JSON.
const ContentTypeMsgpack = "application/msgpack"

// Envelope wraps every successful response.
type Envelope struct {
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata describes a response.
type Metadata struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id,omitempty"`
}

// NewEnvelope wraps data with the current timestamp.
func NewEnvelope(data interface{}) Envelope {
	return Envelope{
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now().UTC().Format(time.RFC3339)},
	}
}

// WantsMsgpack reports whether the request asked for MessagePack.
func WantsMsgpack(r *http.Request) bool {
	return r != nil && strings.Contains(r.Header.Get("Accept"), ContentTypeMsgpack)
}

// Write encodes payload as JSON, or as MessagePack when the request asked for it.
// MessagePack output uses the json field names. The payload is encoded before
// the status is sent, so an encoding failure becomes a 500 error response.
func Write(w http.ResponseWriter, r *http.Request, status int, payload interface{}, log zerolog.Logger) {
	contentType := "application/json"
	var buf bytes.Buffer

	var err error
	if WantsMsgpack(r) {
		contentType = ContentTypeMsgpack
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		err = enc.Encode(payload)
	} else {
		err = json.NewEncoder(&buf).Encode(payload)
	}

	if err != nil {
		log.Error().Err(err).Str("content_type", contentType).Msg("Failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Warn().Err(err).Msg("Failed to write response")
	}
}

// Error writes {"error": message} with status.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, log zerolog.Logger) {
	Write(w, r, status, map[string]string{"error": message}, log)
}
