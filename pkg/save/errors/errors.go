package errors

import "errors"

var (
	// Container errors 📦
	ErrEmptyInput         = errors.New("❌ empty save file")
	ErrUnsupportedVersion = errors.New("❌ unsupported save version")
	ErrDecompression      = errors.New("❌ payload decompression failed")

	// Payload errors 🧩
	ErrTruncatedInput = errors.New("❌ unexpected end of payload")
	ErrInvalidUTF8    = errors.New("❌ invalid UTF-8 in string field")
	ErrUnknownEnumTag = errors.New("❌ unknown enum tag")
	ErrTrailingBytes  = errors.New("❌ trailing bytes after last wire")

	// Operation errors 🔧
	ErrUnknownOperation = errors.New("❌ unknown operation")
	ErrNotReversible    = errors.New("❌ operation is not reversible")
)
