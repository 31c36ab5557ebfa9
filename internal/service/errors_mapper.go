// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/unibrain/internal/app"
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/internal/validators"
	"github.com/MKhiriev/unibrain/internal/wallet"
)

// PaymentMessage is the failure text stored in a [models.PaymentResult].
// Known failures get their fixed wording; anything else keeps its own
// message, falling back to a generic one when that is empty.
func PaymentMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSellerNotFound):
		return app.MsgSellerNotFound
	case errors.Is(err, wallet.ErrTransactionFailed):
		return app.MsgTransactionFailed
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return app.MsgPaymentFailed
}

// UserMessage translates an error into the message shown by the client.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, wallet.ErrProviderMissing):
		return app.MsgWalletMissing
	case errors.Is(err, wallet.ErrNoAccount):
		return app.MsgNoAccountSelected
	case errors.Is(err, wallet.ErrUserRejected):
		return app.MsgRequestRejected
	case errors.Is(err, wallet.ErrChainNotAdded):
		return app.MsgNetworkNotAvailable
	case errors.Is(err, ErrMerchantNotConfigured), errors.Is(err, ErrInvalidMerchant):
		return app.MsgMerchantNotSet
	case errors.Is(err, ErrNotAuthenticated):
		return app.MsgConnectWalletFirst
	case errors.Is(err, validators.ErrRequiredFields):
		return app.MsgRequiredFields
	case errors.Is(err, validators.ErrInvalidPrice):
		return app.MsgInvalidPrice
	case errors.Is(err, ErrDocumentNotFound):
		return app.MsgDocumentUnavailable
	case errors.Is(err, ErrPaidDocument):
		return app.MsgPurchaseRequired
	case errors.Is(err, ErrNFTNotFound):
		return app.MsgNFTNotOwned
	case errors.Is(err, store.ErrStorage), errors.Is(err, store.ErrNoObjectStore):
		return app.MsgStorageUnavailable
	case errors.Is(err, ErrSellerNotFound), errors.Is(err, wallet.ErrTransactionFailed):
		return PaymentMessage(err)
	}

	return app.MsgUnexpectedError
}
