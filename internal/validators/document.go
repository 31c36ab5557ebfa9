package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/unibrain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle      = "title"
	FieldSubject    = "subject"
	FieldUniversity = "university"
	FieldPrice      = "price"
	FieldFiles      = "files"

	FieldFileName = "file_name"
	FieldFileData = "file_data"

	FieldWallet    = "wallet"
	FieldSignature = "signature"
)

// MaxFileSize bounds a single uploaded note.
const MaxFileSize = 50 << 20

// Subjects is the closed list of subjects a note can be filed under.
var Subjects = []string{
	"Matematica",
	"Fisica",
	"Chimica",
	"Biologia",
	"Informatica",
	"Economia",
	"Giurisprudenza",
	"Medicina",
	"Ingegneria",
	"Lettere",
	"Filosofia",
	"Psicologia",
	"Sociologia",
	"Storia dell'Arte",
	"Architettura",
}

// DocumentValidator checks publish requests, uploaded files and signed login
// challenges.
type DocumentValidator struct {
}

func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PublishRequest:
		return v.validatePublishRequest(ctx, value, fields...)
	case *models.PublishRequest:
		return v.validatePublishRequest(ctx, *value, fields...)

	case models.UploadedFile:
		return v.validateFile(ctx, value, fields...)
	case *models.UploadedFile:
		return v.validateFile(ctx, *value, fields...)

	case models.AuthVerifyRequest:
		return v.validateAuthVerifyRequest(ctx, value, fields...)
	case *models.AuthVerifyRequest:
		return v.validateAuthVerifyRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ParsePrice reads a price in ETH. An empty or negative price is invalid;
// zero is a free note.
func ParsePrice(price string) (decimal.Decimal, error) {
	price = strings.TrimSpace(price)
	if price == "" {
		return decimal.Zero, ErrRequiredFields
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	return d, nil
}

func (v *DocumentValidator) validatePublishRequest(ctx context.Context, req models.PublishRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSubject, FieldUniversity, FieldPrice, FieldFiles}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrRequiredFields
			}
		case FieldSubject:
			if strings.TrimSpace(req.Subject) == "" {
				return ErrRequiredFields
			}
			if !slices.Contains(Subjects, req.Subject) {
				return fmt.Errorf("%w: %q", ErrUnknownSubject, req.Subject)
			}
		case FieldUniversity:
			if strings.TrimSpace(req.University) == "" {
				return ErrRequiredFields
			}
		case FieldPrice:
			if _, err := ParsePrice(req.Price); err != nil {
				return err
			}
		case FieldFiles:
			for i, file := range req.Files {
				if err := v.validateFile(ctx, file); err != nil {
					return fmt.Errorf("validation error at file %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateFile(_ context.Context, file models.UploadedFile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFileName, FieldFileData}
	}

	for _, f := range fields {
		switch f {
		case FieldFileName:
			if strings.TrimSpace(file.Name) == "" {
				return ErrEmptyFileName
			}
		case FieldFileData:
			if len(file.Data) == 0 {
				return ErrEmptyFile
			}
			if len(file.Data) > MaxFileSize {
				return ErrFileTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DocumentValidator) validateAuthVerifyRequest(_ context.Context, req models.AuthVerifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWallet, FieldSignature}
	}

	for _, f := range fields {
		switch f {
		case FieldWallet:
			if !common.IsHexAddress(req.Wallet) {
				return ErrInvalidWallet
			}
		case FieldSignature:
			// 65 bytes, hex encoded with a 0x prefix.
			if len(req.Signature) != 132 || !strings.HasPrefix(req.Signature, "0x") {
				return ErrInvalidSignature
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
