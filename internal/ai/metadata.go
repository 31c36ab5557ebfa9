package ai

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/unibrain/models"
)

// DocumentInfo is what the metadata generator needs to know about a document.
type DocumentInfo struct {
	Title      string
	Subject    string
	University string
	Professor  string
	Summary    models.DocumentSummary
}

// DefaultColorScheme is used for subjects without a dedicated scheme.
const DefaultColorScheme = "Rainbow Gradient"

var subjectColorSchemes = map[string]string{
	"Matematica":     "Blue Gradient",
	"Fisica":         "Purple Gradient",
	"Chimica":        "Green Gradient",
	"Biologia":       "Teal Gradient",
	"Informatica":    "Orange Gradient",
	"Economia":       "Gold Gradient",
	"Giurisprudenza": "Red Gradient",
	"Medicina":       "Rose Gradient",
	"Ingegneria":     "Steel Gradient",
	"Lettere":        "Violet Gradient",
}

// ColorScheme returns the color scheme trait of a subject.
func ColorScheme(subject string) string {
	if scheme, ok := subjectColorSchemes[subject]; ok {
		return scheme
	}
	return DefaultColorScheme
}

// GenerateNFTMetadata builds the ERC-721 metadata of a document.
func GenerateNFTMetadata(doc DocumentInfo) models.NFTMetadata {
	attributes := []models.NFTAttribute{
		{TraitType: "Subject", Value: doc.Subject},
		{TraitType: "University", Value: doc.University},
		{TraitType: "Difficulty", Value: doc.Summary.Difficulty},
		{TraitType: "Reading Time", Value: fmt.Sprintf("%d min", doc.Summary.EstimatedReadTime)},
		{TraitType: "Key Points", Value: len(doc.Summary.KeyPoints)},
		{TraitType: "Type", Value: "Academic Notes"},
	}
	if doc.Professor != "" {
		attributes = append(attributes, models.NFTAttribute{TraitType: "Professor", Value: doc.Professor})
	}
	attributes = append(attributes, models.NFTAttribute{TraitType: "Color Scheme", Value: ColorScheme(doc.Subject)})

	return models.NFTMetadata{
		Name: doc.Title + " - Academic NFT",
		Description: fmt.Sprintf("%s\n\nThis NFT represents ownership of premium academic content in %s. Key topics include: %s.",
			doc.Summary.Summary, doc.Subject, strings.Join(doc.Summary.Topics, ", ")),
		Image:      PlaceholderImage(doc.Subject),
		Attributes: attributes,
	}
}

// PlaceholderImage is the image used until real artwork is generated.
func PlaceholderImage(subject string) string {
	return "https://via.placeholder.com/400x400/2563eb/ffffff?text=" + strings.ReplaceAll(url.QueryEscape(subject), "+", "%20")
}
