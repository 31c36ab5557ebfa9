// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/unibrain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPublishRequest() models.PublishRequest {
	return models.PublishRequest{
		Title:      "Analisi Matematica I",
		Subject:    "Matematica",
		University: "Politecnico di Milano",
		Price:      "0.01",
		Files: []models.UploadedFile{
			{Name: "analisi.pdf", ContentType: "application/pdf", Size: 3, Data: []byte("pdf")},
		},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewDocumentValidator(t *testing.T) {
	require.NotNil(t, NewDocumentValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewDocumentValidator()
	ctx := context.Background()

	req := validPublishRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))

	file := req.Files[0]
	assert.NoError(t, v.Validate(ctx, file))
	assert.NoError(t, v.Validate(ctx, &file))

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "nope"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// PublishRequest
// ---------------------------------------------------------------------------

func TestValidatePublishRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.PublishRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.PublishRequest) {}},
		{name: "free note", mutate: func(r *models.PublishRequest) { r.Price = "0" }},
		{name: "no files", mutate: func(r *models.PublishRequest) { r.Files = nil }},
		{name: "missing title", mutate: func(r *models.PublishRequest) { r.Title = "  " }, wantErr: ErrRequiredFields},
		{name: "missing subject", mutate: func(r *models.PublishRequest) { r.Subject = "" }, wantErr: ErrRequiredFields},
		{name: "missing university", mutate: func(r *models.PublishRequest) { r.University = "" }, wantErr: ErrRequiredFields},
		{name: "missing price", mutate: func(r *models.PublishRequest) { r.Price = "" }, wantErr: ErrRequiredFields},
		{name: "malformed price", mutate: func(r *models.PublishRequest) { r.Price = "abc" }, wantErr: ErrInvalidPrice},
		{name: "negative price", mutate: func(r *models.PublishRequest) { r.Price = "-1" }, wantErr: ErrInvalidPrice},
		{name: "unknown subject", mutate: func(r *models.PublishRequest) { r.Subject = "Astrologia" }, wantErr: ErrUnknownSubject},
		{name: "empty file", mutate: func(r *models.PublishRequest) { r.Files[0].Data = nil }, wantErr: ErrEmptyFile},
		{name: "unnamed file", mutate: func(r *models.PublishRequest) { r.Files[0].Name = "" }, wantErr: ErrEmptyFileName},
	}

	v := NewDocumentValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPublishRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePublishRequest_FieldScoping(t *testing.T) {
	v := NewDocumentValidator()
	req := models.PublishRequest{Title: "Only a title"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldTitle))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldTitle, FieldPrice), ErrRequiredFields)
}

func TestValidateFile_TooLarge(t *testing.T) {
	file := models.UploadedFile{Name: "big.pdf", Data: make([]byte, MaxFileSize+1)}

	err := NewDocumentValidator().Validate(context.Background(), file)

	assert.ErrorIs(t, err, ErrFileTooLarge)
}

// ---------------------------------------------------------------------------
// ParsePrice
// ---------------------------------------------------------------------------

func TestParsePrice(t *testing.T) {
	d, err := ParsePrice(" 0.005 ")
	require.NoError(t, err)
	assert.Equal(t, "0.005", d.String())

	d, err = ParsePrice("0")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParsePrice("1e")
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

// ---------------------------------------------------------------------------
// AuthVerifyRequest
// ---------------------------------------------------------------------------

func TestValidateAuthVerifyRequest(t *testing.T) {
	sig := "0x" + strings.Repeat("ab", 65)
	tests := []struct {
		name    string
		req     models.AuthVerifyRequest
		wantErr error
	}{
		{name: "valid", req: models.AuthVerifyRequest{Wallet: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", Signature: sig}},
		{name: "bad wallet", req: models.AuthVerifyRequest{Wallet: "0x123", Signature: sig}, wantErr: ErrInvalidWallet},
		{name: "short signature", req: models.AuthVerifyRequest{Wallet: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", Signature: "0xabcd"}, wantErr: ErrInvalidSignature},
		{name: "no prefix", req: models.AuthVerifyRequest{Wallet: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", Signature: strings.Repeat("ab", 66)}, wantErr: ErrInvalidSignature},
	}

	v := NewDocumentValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
