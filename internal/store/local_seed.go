package store

import (
	"github.com/MKhiriev/unibrain/models"
	"github.com/shopspring/decimal"
)

// seedDocuments returns the three demo listings shown on a fresh install.
func seedDocuments(f *recordFactory) []models.Document {
	now := f.now()
	docs := []models.Document{
		{
			Title:          "Analisi Matematica I - Limiti e Derivate",
			Description:    "Appunti completi su limiti, derivate e applicazioni. Include esempi pratici e esercizi risolti.",
			Subject:        "Matematica",
			University:     "Università Bocconi",
			Course:         "Economia",
			Professor:      "Prof. Rossi",
			AcademicYear:   "2024/2025",
			Tags:           []string{"matematica", "limiti", "derivate", "analisi"},
			PriceETH:       decimal.RequireFromString("0.01"),
			FileURL:        "https://via.placeholder.com/400x300/2563eb/ffffff?text=Analisi+Matematica",
			FileName:       "analisi_matematica_1.pdf",
			FileSize:       2048000,
			FileType:       "application/pdf",
			UploadPath:     "demo/analisi_matematica_1.pdf",
			DownloadsCount: 15,
			PurchasesCount: 8,
			UserID:         "demo-user-1",
		},
		{
			Title:          "Fisica Quantistica - Introduzione",
			Description:    "Note introduttive alla meccanica quantistica con esperimenti mentali e applicazioni moderne.",
			Subject:        "Fisica",
			University:     "Politecnico di Milano",
			Course:         "Ingegneria Fisica",
			Professor:      "Prof. Bianchi",
			AcademicYear:   "2024/2025",
			Tags:           []string{"fisica", "quantistica", "meccanica", "esperimenti"},
			PriceETH:       decimal.Zero,
			IsFree:         true,
			FileURL:        "https://via.placeholder.com/400x300/059669/ffffff?text=Fisica+Quantistica",
			FileName:       "fisica_quantistica_intro.pdf",
			FileSize:       1536000,
			FileType:       "application/pdf",
			UploadPath:     "demo/fisica_quantistica.pdf",
			DownloadsCount: 42,
			PurchasesCount: 0,
			UserID:         "demo-user-2",
		},
		{
			Title:          "Programmazione Web - React e TypeScript",
			Description:    "Guida completa allo sviluppo web moderno con React, TypeScript e best practices.",
			Subject:        "Informatica",
			University:     "Università Statale",
			Course:         "Informatica",
			Professor:      "Prof. Verdi",
			AcademicYear:   "2024/2025",
			Tags:           []string{"react", "typescript", "web", "programmazione"},
			PriceETH:       decimal.RequireFromString("0.005"),
			FileURL:        "https://via.placeholder.com/400x300/7c3aed/ffffff?text=React+TypeScript",
			FileName:       "react_typescript_guide.pdf",
			FileSize:       3072000,
			FileType:       "application/pdf",
			UploadPath:     "demo/react_typescript.pdf",
			DownloadsCount: 28,
			PurchasesCount: 12,
			UserID:         "demo-user-1",
		},
	}

	for i := range docs {
		docs[i].ID = f.ids.Generate()
		docs[i].CreatedAt = now
		docs[i].UpdatedAt = now
	}

	return docs
}
