// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the transport to the hosted backend: a PostgREST table
// API and an object storage API sharing one base URL and API key.
//
// The primary abstraction is [Backend]. Row shaping and fallback live in the
// store package; this package only moves JSON and bytes. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/unibrain/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend defines the table and object storage operations of the hosted
// backend.
type Backend interface {
	// Select decodes the rows of table matching query into out (a pointer to
	// a slice).
	Select(ctx context.Context, table string, query Query, out any) error

	// Insert writes record into table and decodes the stored rows into out.
	Insert(ctx context.Context, table string, record any, out any) error

	// Update applies patch to the rows of table matching query and decodes
	// the updated rows into out.
	Update(ctx context.Context, table string, query Query, patch any, out any) error

	// Upload stores data under bucket/path.
	Upload(ctx context.Context, bucket, path string, data []byte, contentType string) error

	// List returns up to limit objects of bucket, newest first.
	List(ctx context.Context, bucket string, limit int) ([]models.StoredObject, error)

	// PublicURL is the public download URL of bucket/path.
	PublicURL(bucket, path string) string
}

// Query holds PostgREST query parameters.
type Query url.Values

func NewQuery() Query {
	return Query{}
}

// Select restricts or expands the returned columns.
func (q Query) Select(columns string) Query {
	url.Values(q).Set("select", columns)
	return q
}

// Eq adds a column=eq.value filter.
func (q Query) Eq(column, value string) Query {
	url.Values(q).Add(column, "eq."+value)
	return q
}

// Order sorts by column.
func (q Query) Order(column string, desc bool) Query {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	url.Values(q).Set("order", column+"."+dir)
	return q
}

// Window sets offset and limit.
func (q Query) Window(offset, limit int) Query {
	v := url.Values(q)
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (q Query) Encode() string {
	return url.Values(q).Encode()
}
