// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// notFound answers unknown routes with a JSON error body, matching the shape
// of every other API error.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, "Cannot "+r.Method+" "+r.URL.Path, http.StatusNotFound)
}

// methodNotAllowed answers known routes called with an unsupported method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, "method "+r.Method+" is not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
}
