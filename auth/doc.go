// Copyright (c) 2025 tor-iv.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifiers, tokens and the admin key.

# Admin Key

The admin key is an HMAC-SHA256 of a fixed scope string under the
configured salt:

	adminKey := auth.GenerateAdminKey(cfg.AdminKeySalt)
	err := auth.ValidateAdminKey(header, cfg.AdminKeySalt)

URL-safe base64 without padding. Deterministic, so validation needs no
database lookup. Rotating the salt rotates the key.

# User Tokens

Random 24-byte (192-bit) secrets handed out at registration:

	token, err := auth.GenerateUserToken()

Clients send the token in the X-User-Token header. CheckTokenFormat rejects
obviously malformed values before they reach the database.

# IDs

	userID := auth.NewUserID()         // UUID v4
	snapshotID := auth.NewSnapshotID() // UUID v7, sorts by creation time

# IP Hashing

For privacy-preserving abuse detection on submissions:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
