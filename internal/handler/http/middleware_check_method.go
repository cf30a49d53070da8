// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package http

import (
	"net/http"
)

// maskUnknownMethods is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 Method Not Allowed whenever a path matches a registered
// route but the verb does not. Because most of the route surface here sits
// behind authentication, a 405 would confirm to an unauthenticated caller
// that the path exists. Answering 404 instead keeps probing with unsupported
// verbs indistinguishable from hitting an unknown path.
func maskUnknownMethods(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
