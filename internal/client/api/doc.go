// Package api talks to the EMhub backend.
//
// # Overview
//
//  1. Resolver maps an entity kind and record id to the create, update and
//     delete endpoints, and names the content endpoint serving form
//     fragments.
//  2. Client is the transport-agnostic contract used by the controllers;
//     HTTPClient implements it over net/http, sending JSON bodies or
//     multipart form data (an "attrs" part plus one part per attachment).
//  3. CachingClient keeps fetched form fragments for a short TTL and drops
//     them when a record of the matching kind changes.
//
// # Error Handling
//
// Transport conditions are reported as sentinel errors from
// internal/common (ErrorUnavailable, ErrorUnauthorized, ErrTokenExpired);
// match them with errors.Is. A reply whose body carries an "error" key is not
// a transport error, even with a 4xx/5xx status: it is returned as a
// failure-shaped models.Response. 401 and 403 are always ErrorUnauthorized.
package api
