// Package rpc implements the JSON-RPC 2.0 message layer beneath the LSP
// dispatcher: the Request/Notification/Response message model, the
// Content-Length framing used on the wire, and the bounded blocking
// MessageQueue connecting the transport to the dispatcher.
//
// Framing is byte-oriented and payload-agnostic: Reader and Writer move
// raw JSON text; classification and validation of that text belongs to
// Classify and the codec.
package rpc
