// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is fatal at startup: either services are missing
// or the config has no HTTP address.
var errNoHandlersAreCreated = errors.New("handler: nothing to serve")
