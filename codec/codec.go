// Package codec converts caller values to and from the raw bytes kvcache stores.
//
// The store keeps no type information, so reading a value back is only as faithful
// as the codec the reader picks. Scalar codecs (String, Int, Float, Bytes) read values
// written by Cache.Store; structured codecs (JSON, Msgpack, CBOR, Protobuf) pair with
// kvcache.StoreWith / kvcache.GetWith.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
