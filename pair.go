package dstruct

// KeyValuePair is one entry of a hash map bucket chain.
type KeyValuePair[TK any, TV any] struct {
	// Key is the key part in the pair.
	Key TK
	// Value is the value part in the pair.
	Value TV
}
