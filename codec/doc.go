// Package codec is the serialization boundary between the contract core and
// its payloads. The core is written against the Codec interface; JSON is the
// default implementation. Failures surface as serialize/deserialize errors.
package codec
