// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message constants used by
// the UniBrain HTTP handlers, the service error mapper and the terminal UI.
//
// The Msg* constants in the first block are written into HTTP response
// bodies. The second block holds the user-facing messages shown by the
// client; they are kept in Italian, the language of the marketplace.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgInvalidSignature is returned when a signed login challenge does not
	// recover to the claimed wallet.
	MsgInvalidSignature = "invalid wallet signature"

	// MsgNoWalletProvided is returned when a handler requires the wallet of
	// the caller but none is present in the request context.
	MsgNoWalletProvided = "no wallet provided"

	// MsgDocumentNotFound is returned when a document id matches nothing.
	MsgDocumentNotFound = "document not found"

	// MsgNFTNotFound is returned when a transfer names a token the caller
	// does not own.
	MsgNFTNotFound = "nft not found"

	// MsgJobNotFound is returned for unknown NFT generation jobs.
	MsgJobNotFound = "job not found"

	// MsgShareNotSupported is returned when the mini-app host lacks the
	// share_extension capability.
	MsgShareNotSupported = "share extension capability not available"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// server was started without an application version.
	MsgVersionIsNotSpecified = "app version is not specified"

	// MsgMethodNotAllowed is returned for unsupported HTTP methods.
	MsgMethodNotAllowed = "method not allowed"
)

// User-facing messages of the marketplace client.
const (
	MsgWalletMissing       = "MetaMask non rilevato."
	MsgNoAccountSelected   = "Nessun account selezionato"
	MsgMerchantNotSet      = "Indirizzo merchant non configurato"
	MsgPaymentSent         = "Pagamento inviato! Puoi scaricare la nota."
	MsgPurchaseCancelled   = "Acquisto annullato o fallito."
	MsgRequiredFields      = "Compila i campi obbligatori: Titolo, Materia, Università, Prezzo"
	MsgConnectWalletFirst  = "Connetti il wallet per continuare"
	MsgRequestRejected     = "Richiesta rifiutata dal wallet"
	MsgNetworkNotAvailable = "Impossibile passare alla rete Base"
	MsgPublishSucceeded    = "Nota pubblicata con successo!"
	MsgDownloadRecorded    = "Download registrato"
	MsgBidSigned           = "Offerta firmata"
	MsgSellerNotFound      = "Seller wallet address not found"
	MsgTransactionFailed   = "Transaction failed"
	MsgPaymentFailed       = "Payment failed"
	MsgUnexpectedError     = "Si è verificato un errore imprevisto"
	MsgStorageUnavailable  = "Archivio non disponibile"
	MsgInvalidPrice        = "Prezzo non valido"
	MsgDocumentUnavailable = "Nota non trovata"
	MsgPurchaseRequired    = "Acquista la nota per scaricarla"
	MsgNFTNotOwned         = "NFT non trovato o non di tua proprietà"
)
