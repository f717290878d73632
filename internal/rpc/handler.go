package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/meatsuits/bountyboard/pkg/clog"
)

const DefaultMaxBodyBytes = 1 << 20

// Handler serves the discovery document on GET and JSON-RPC calls on POST.
type Handler struct {
	dispatcher   *Dispatcher
	discovery    []byte
	maxBodyBytes int64
}

func NewHandler(d *Dispatcher, maxBodyBytes int64) (*Handler, error) {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	doc, err := encode(NewDiscovery())
	if err != nil {
		return nil, fmt.Errorf("failed to encode discovery document: %w", err)
	}
	return &Handler{dispatcher: d, discovery: doc, maxBodyBytes: maxBodyBytes}, nil
}

func (h *Handler) ServeDiscovery(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusOK, h.discovery)
}

func (h *Handler) ServeRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		// An unreadable or oversized body is reported like malformed JSON.
		clog.AddError(r.Context(), err)
		body = nil
	}
	reply := h.dispatcher.Handle(r.Context(), body)
	out, err := encode(reply.Response)
	if err != nil {
		clog.AddError(r.Context(), err)
		reply = internalFailure(err.Error()).reply(reply.Response.ID)
		out, _ = encode(reply.Response)
	}
	write(w, r, reply.Status, out)
}

func encode(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func write(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		slog.DebugContext(r.Context(), "failed to write response", clog.ErrorAttributeKey, err)
	}
}
