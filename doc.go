// Package fit decodes the Flexible and Interoperable Data Transfer (FIT)
// binary format produced by fitness devices (watches, bike computers,
// heart-rate straps) into a stream of typed, semantically tagged
// messages.
//
// FIT is self-describing: local definition records declare the byte
// layout of the data records that follow them, and that layout can be
// redefined mid-stream. Decoder keeps the per-local-message-type
// definitions and a developer-field registry alive for the duration of
// one file, resetting both when a new file header is seen (FIT streams
// may chain multiple files back to back).
package fit
