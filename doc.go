// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package ccapi holds the shared constants of the Cell Collective client.
//
// The local response cache lives in the db package; the boolean-network
// domain types live in the model package.
package ccapi
