// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
Every failure here is a malformed-input error (4xx) raised before the
request reaches a service.
*/
package requestutil

import (
	"encoding/json"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/gallery/internal/platform/apperr"
	"github.com/taibuivan/gallery/internal/platform/constants"
	"github.com/taibuivan/gallery/internal/platform/validate"
)

// Supported request body media types.
const (
	MediaJSON      = "application/json"
	MediaForm      = "application/x-www-form-urlencoded"
	MediaMultipart = "multipart/form-data"
)

// maxMultipartMemory bounds the in-memory part of multipart bodies.
const maxMultipartMemory = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are ignored, so a target struct acts as an allow-list.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
MediaType returns the lower-cased media type of the request body, without parameters.

An absent Content-Type yields an empty string.
*/
func MediaType(request *http.Request) string {
	raw := request.Header.Get(constants.HeaderContentType)
	if raw == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}
	return mediaType
}

/*
Form parses URL-encoded or multipart bodies and returns the merged values of
the body and the query string.
*/
func Form(request *http.Request) (url.Values, error) {
	var err error
	if MediaType(request) == MediaMultipart {
		err = request.ParseMultipartForm(maxMultipartMemory)
	} else {
		err = request.ParseForm()
	}
	if err != nil {
		return nil, apperr.BadRequest("Invalid form payload")
	}
	return request.Form, nil
}

/*
ID retrieves a named URL parameter and parses it as a positive integer identifier.

Returns:
  - int64: the identifier
  - error: apperr.BadRequest if the parameter is not a positive integer
*/
func ID(request *http.Request, name string) (int64, error) {
	raw := Param(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid " + name + ": " + strconv.Quote(raw))
	}
	return id, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
OptionalFloat parses an optional decimal form value.

An empty value yields nil; anything that is not a number yields apperr.BadRequest.
*/
func OptionalFloat(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, apperr.BadRequest(field + " must be a number")
	}
	return &value, nil
}
