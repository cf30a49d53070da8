// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TrueNamePath Authors

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address is
// provided in the server configuration, leaving no transport handler to
// initialize. This is a fatal misconfiguration: the application fails at
// startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
