// Package monitor streams solver progress to WebSocket clients.
//
// A Hub is an http.Handler: every request is upgraded to a WebSocket and
// registered as a client. Publish sends one JSON Event to every client and
// drops those whose write fails. A client that joins mid-solve first receives
// the most recent event.
//
// Wire format:
//
//	{"type":"progress","iteration":10000,"error":0.0123,"status":"running"}
//	{"type":"done","iteration":52000,"error":9.8e-7,"status":"converged"}
//
// "error" is omitted while it has not been measured yet.
package monitor
