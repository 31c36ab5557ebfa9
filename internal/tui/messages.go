package tui

import (
	"github.com/MKhiriev/unibrain/internal/store"
	"github.com/MKhiriev/unibrain/models"
)

type sessionMsg struct {
	user *models.User
	err  error
}

type loggedOutMsg struct {
	err error
}

// resyncMsg is sent after the wallet switched network.
type resyncMsg struct{}

type documentsLoadedMsg struct {
	items    []models.Document
	source   store.Source
	fallback bool
	err      error
}

type nftsLoadedMsg struct {
	items    []models.NFT
	mine     bool
	source   store.Source
	fallback bool
	err      error
}

type featuredLoadedMsg struct {
	items []models.FeaturedNote
	err   error
}

type paymentDoneMsg struct {
	result models.PaymentResult
	err    error
}

type downloadDoneMsg struct {
	err error
}

type publishedMsg struct {
	doc models.Document
	err error
}

type bidSignedMsg struct {
	bid models.Bid
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
