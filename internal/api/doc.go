package api

// Package api wraps the registry backend's REST endpoints: authentication and
// CRUD on owners and cars. Each operation issues exactly one HTTP request and
// maps a non-2xx response to a typed error. The bearer token is read from the
// configured token source at call time, so a token change takes effect on the
// next call without restarting the app.
