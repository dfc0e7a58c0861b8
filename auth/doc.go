// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth is the boundary to the identity provider.

Users sign in elsewhere. Requests carry the provider's HS256 token:

	Authorization: Bearer <token>

ParseToken verifies the signature, expiry and (optionally) issuer, and
returns the Identity inside it:

	id, err := auth.ParseToken(auth.BearerToken(r.Header.Get("Authorization")), secret, issuer)

The user id is the token subject; the email claim is optional.

# Request Context

Middleware stores the identity on the request context:

	ctx = auth.WithIdentity(ctx, id)
	id := auth.FromContext(ctx) // nil when anonymous

# Local Tokens

IssueToken signs tokens with the same secret. It is used by tests and for
local development without a running identity provider.
*/
package auth
