package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Connection errors (retryable)
const (
	// ErrCodeClientCreation indicates the driver rejected the URL or failed to open a client.
	ErrCodeClientCreation ErrorCode = "CLIENT_CREATION"
	// ErrCodePoolCreation indicates managed-connection construction failed.
	ErrCodePoolCreation ErrorCode = "POOL_CREATION"
	// ErrCodeConnectionAcquisition indicates a connection could not be acquired from a pool.
	// Reserved: the current call paths hand back one shared handle and never check out
	// individual connections.
	ErrCodeConnectionAcquisition ErrorCode = "CONNECTION_ACQUISITION"
	// ErrCodeConnectionManager indicates a failure on an already-established managed connection.
	ErrCodeConnectionManager ErrorCode = "CONNECTION_MANAGER"
	// ErrCodeTimeout indicates the connect deadline expired.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeNetwork indicates a network-level failure.
	// Reserved: the driver owns the wire and its failures surface through the
	// blanket conversion instead.
	ErrCodeNetwork ErrorCode = "NETWORK"
)

// Input errors (not retryable)
const (
	// ErrCodeConfiguration indicates invalid input configuration (e.g. empty host).
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeSerialization indicates JSON encoding of an outgoing value failed.
	ErrCodeSerialization ErrorCode = "SERIALIZATION"
	// ErrCodeDeserialization indicates JSON decoding of a stored value failed.
	ErrCodeDeserialization ErrorCode = "DESERIALIZATION"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeClientCreation:        true,
	ErrCodePoolCreation:          true,
	ErrCodeConnectionAcquisition: true,
	ErrCodeConnectionManager:     true,
	ErrCodeTimeout:               true,
	ErrCodeNetwork:               true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
