// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/daoforge/scriptexport/lib/export"
	"github.com/daoforge/scriptexport/lib/version"
)

// maxParamsBytes bounds the request body. Builder parameters are
// small JSON documents; anything near this limit is a client error.
const maxParamsBytes = 1 << 20

// compressThreshold is the smallest response body worth compressing.
// Below this, zstd framing overhead cancels out the savings.
const compressThreshold = 256

// revisionHeader advertises the build identity on every response so
// callers can verify server compatibility.
const revisionHeader = "X-Scriptexport-Revision"

// zstdEncoder is reused across requests. EncodeAll on a nil-writer
// encoder is safe for concurrent use.
var zstdEncoder *zstd.Encoder

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("scriptexportd: zstd encoder initialization failed: " + err.Error())
	}
}

// handler serves the export endpoint. It holds only immutable state,
// so a single instance handles all requests concurrently.
type handler struct {
	registry *export.Registry
	logger   *slog.Logger
}

func newHandler(registry *export.Registry, logger *slog.Logger) *handler {
	return &handler{registry: registry, logger: logger}
}

// routes wires the endpoint paths and wraps them with the revision
// header middleware.
func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/export/{name}", h.handleExport)
	mux.HandleFunc("GET /v1/builders", h.handleBuilders)
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /version", h.handleVersion)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(revisionHeader, version.Revision())
		mux.ServeHTTP(w, r)
	})
}

// exportResponse is the JSON success envelope. CBORHex is the hex
// text rendering of the artifact payload; Hash is its BLAKE2b-224
// script hash. Revision repeats the header value so recorded
// responses stay attributable without the transport metadata.
type exportResponse struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	CBORHex  string `json:"cborHex"`
	Hash     string `json:"hash"`
	Revision string `json:"revision"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxParamsBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid-parameters",
			fmt.Sprintf("reading request body: %v", err))
		return
	}

	envelope, err := export.Dispatch(h.registry, name, json.RawMessage(params))
	if err != nil {
		kind := export.KindOf(err)
		h.logger.Warn("dispatch failed", "builder", name, "kind", kind.String(), "error", err)
		h.writeError(w, statusForKind(kind), kind.String(), err.Error())
		return
	}

	h.logger.Info("artifact exported",
		"builder", name,
		"kind", envelope.Kind(),
		"bytes", len(envelope.Payload()),
		"hash", envelope.HashHex())

	if wantsRawCBOR(r) {
		w.Header().Set("Content-Type", "application/cbor")
		h.writeBody(w, r, http.StatusOK, envelope.Payload())
		return
	}

	h.writeJSON(w, r, http.StatusOK, exportResponse{
		Name:     name,
		Kind:     string(envelope.Kind()),
		CBORHex:  envelope.Hex(),
		Hash:     envelope.HashHex(),
		Revision: version.Revision(),
	})
}

// builderInfo is one row of the builder listing, in registration
// order.
type builderInfo struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

func (h *handler) handleBuilders(w http.ResponseWriter, r *http.Request) {
	entries := h.registry.Entries()
	listing := make([]builderInfo, len(entries))
	for i, entry := range entries {
		listing[i] = builderInfo{Key: entry.Key, Description: entry.Description}
	}
	h.writeJSON(w, r, http.StatusOK, listing)
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{
		"version":  version.Version,
		"revision": version.Revision(),
	})
}

// statusForKind maps the dispatch error taxonomy onto response
// classes: absence is not-found, bad input is a client error, and a
// builder that cannot produce an artifact from well-typed input is
// unprocessable rather than a server fault.
func statusForKind(kind export.ErrorKind) int {
	switch kind {
	case export.UnknownKey:
		return http.StatusNotFound
	case export.InvalidParameters:
		return http.StatusBadRequest
	case export.BuildFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func wantsRawCBOR(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/cbor")
}

func acceptsZstd(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "zstd")
}

// writeBody writes a response body, zstd-compressing it when the
// client asked for it and the body is large enough to benefit. Must
// run before any explicit WriteHeader so the Content-Encoding header
// can still be set.
func (h *handler) writeBody(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	if acceptsZstd(r) && len(body) >= compressThreshold {
		compressed := zstdEncoder.EncodeAll(body, nil)
		if len(compressed) < len(body) {
			w.Header().Set("Content-Encoding", "zstd")
			body = compressed
		}
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("writing response", "error", err)
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		// Payload types here are fixed structs; this is unreachable
		// short of a defect.
		http.Error(w, "encoding response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	h.writeBody(w, r, status, body)
}

func (h *handler) writeError(w http.ResponseWriter, status int, kind, detail string) {
	body, err := json.Marshal(errorResponse{Error: kind, Detail: detail})
	if err != nil {
		http.Error(w, detail, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("writing error response", "error", err)
	}
}
