// Package api implements the typed client for the remote storefront REST
// service. All transport concerns live here: base URL, request timeout,
// bearer-token injection, and normalization of failures into a single
// error shape consumed uniformly by the rest of the client.
package api
