package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNotAuthenticated    = errors.New("wallet not connected")

	ErrDocumentNotFound      = errors.New("document not found")
	ErrNFTNotFound           = errors.New("nft not found or not owned by sender")
	ErrJobNotFound           = errors.New("nft generation job not found")
	ErrMerchantNotConfigured = errors.New("merchant address not configured")
	ErrInvalidMerchant       = errors.New("invalid merchant address")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidNonce            = errors.New("login challenge is invalid or expired")
	ErrSignatureMismatch       = errors.New("signature does not match wallet")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrShareNotSupported     = errors.New("share extension capability not available")
)

var (
	ErrSellerNotFound = errors.New("seller wallet address not found")
	ErrFreeDocument   = errors.New("document is free")
	ErrPaidDocument   = errors.New("document must be purchased before download")
)
