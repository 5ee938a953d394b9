// Package http implements the HTTP transport layer of the travel journal API.
//
// It owns the dispatcher: a fixed middleware chain (trace id, access log,
// metrics, panic recovery, CORS, JSON body checks) in front of an ordered
// route table that mounts the /auth and /posts routers and ends in a 404
// catch-all. Handlers return errors instead of writing failures themselves;
// every error is turned into exactly one JSON reply by the error responder.
package http
