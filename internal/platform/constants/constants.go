// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, header names, and the CORS vocabulary that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - HTTP Headers: Canonical header names used by middleware.
  - CORS: Default allowed methods and headers advertised to browsers.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "gallery-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderContentType   = "Content-Type"
	HeaderAllow         = "Allow"
)

// # Cross-Origin Resource Sharing

const (
	// CORSAllowAll is the wildcard origin.
	CORSAllowAll = "*"

	// PreflightAllow is the Allow header returned for OPTIONS requests.
	PreflightAllow = "HEAD,GET,PUT,POST,DELETE,OPTIONS"

	// PreflightAllowHeaders is the Access-Control-Allow-Headers value returned for OPTIONS requests.
	PreflightAllowHeaders = "X-Requested-With, X-HTTP-Method-Override, Content-Type, Cache-Control, Accept"
)

// DefaultCORSMethods lists the verbs browsers may use cross-origin.
var DefaultCORSMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}

// DefaultCORSExposedHeaders lists the response headers readable by browser scripts.
var DefaultCORSExposedHeaders = []string{HeaderContentType}

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)
