// Package codec converts between the dynamic anyval tree and the typed
// protocol structs, in both directions, with precise validation errors.
//
// Decode walks target structs by their json tags: required fields that are
// absent, wire values with the wrong tag, and enum values outside their
// defined set all produce a DecodeError naming the type and attribute,
// which surfaces to the client as an InvalidParams response. Encode is the
// inverse; absent optional fields are omitted from the output object.
//
// Free-form attributes declared as anyval.Value (data, experimental,
// metadata) are deep-copied in both directions: the codec never aliases
// input sub-trees into owned outputs.
//
// Union types participate through the AnyDecoder/AnyEncoder interfaces
// (self-contained unions) or the handler table in union.go (unions whose
// variants need recursive struct decoding).
package codec
