package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredFields   = errors.New("title, subject, university and price are required")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrUnknownSubject   = errors.New("unknown subject")
	ErrEmptyFileName    = errors.New("file name is required")
	ErrEmptyFile        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file is too large")
	ErrInvalidWallet    = errors.New("invalid wallet address")
	ErrInvalidSignature = errors.New("invalid signature format")
)
