package models

import "time"

// NFT is the ownership record minted for a purchased document.
type NFT struct {
	ID              string         `json:"id"`
	TokenID         string         `json:"token_id"`
	ContractAddress string         `json:"contract_address"`
	DocumentID      string         `json:"document_id"`
	OwnerWallet     string         `json:"owner_wallet"`
	MetadataURI     string         `json:"metadata_uri"`
	ImageURL        string         `json:"image_url"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Attributes      []NFTAttribute `json:"attributes"`
	CreatedAt       time.Time      `json:"created_at"`
}

// NFTAttribute is an ERC-721 metadata trait. Value is a string or a number.
type NFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// NFTMetadata is the off-chain ERC-721 metadata document.
type NFTMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Attributes  []NFTAttribute `json:"attributes"`
}

// NFTTransferRequest moves an NFT owned by the caller to another wallet.
type NFTTransferRequest struct {
	To string `json:"to"`
}
