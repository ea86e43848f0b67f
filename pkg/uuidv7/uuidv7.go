// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates time-ordered identifiers, used for request
// correlation IDs so log lines sort by arrival.
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. If the time-based generator fails it falls
// back to a random UUIDv4 instead of panicking inside a request.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
