// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles an immutable Tollgate [Client] from layered
// configuration.
//
// A [Builder] loads configuration once when it is created (see package
// config for the origins and their order), accepts programmatic overrides
// through its setters and resolves everything in [Builder.Build]:
//
//  1. cache manager (disabled, explicit, or in-memory with region overrides)
//  2. proxy
//  3. client credentials: explicit credentials, explicit API key, then the
//     default credentials provider chain
//  4. API key resolver
//  5. base URL resolver
//  6. request authenticator for the authentication scheme
//
// A builder can be built once. Builders are not safe for concurrent use; a
// built [Client] is immutable.
package client
