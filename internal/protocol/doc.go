// Package protocol defines the Language Server Protocol 3.17 schema:
// request, response, and notification parameter types, enumerations with
// name and value lookup tables, the method registries for both transport
// directions, and the JSON-RPC error model.
//
// The types here are plain data. Conversion between them and the dynamic
// anyval tree lives in the codec package; the only behavior carried by this
// package is enum validation and union discrimination.
//
// # Unions
//
// LSP unions with overlapping shapes are represented as structs with
// exactly one variant field set. Each union documents its discrimination
// rule. Most implement DecodeAny/EncodeAny so the codec can dispatch on
// them; InlayHintLabel, InlineValue, DocumentChange and the two diagnostic
// report unions are instead handled by the codec's union table.
//
// # Optionality
//
// Optional fields are pointers, slices, maps, or anyval.Value; scalar
// fields without an omitempty tag are required and their absence is a
// validation error in the codec.
package protocol
