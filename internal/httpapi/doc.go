// Package httpapi exposes the Migrate Blocks action over HTTP.
//
// GET /blocks/migrate renders the action label and description as JSON and
// POST /blocks/migrate runs the action, answering with a See Other redirect
// back to the action the way a submitted form would.
package httpapi
