// Package serialize implements the bit-for-bit block checkpoint
// format: a concatenation of length-prefixed, little-endian records
// covering a block's classified mask, its disjoint-set forest, its
// component vector, and its round counter. It builds the wire format
// directly on the standard library's encoding/binary, following
// gridgraph's plain-struct, no-magic-dependency style: opaque blob
// transports like cos-go-sdk-v5 or protobuf handle bytes once this
// package has already produced them, not the record layout itself.
package serialize
