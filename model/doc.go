// Copyright (c) 2026 Michael D Henderson. All rights reserved.

// Package model defines the boolean-network types returned by Cell Collective.
//
// The types are plain data holders. QueryList gives them simple filtering.
package model
