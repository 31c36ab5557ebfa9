package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

type stubGenerator struct {
	text   string
	err    error
	system string
	user   string
}

func (s *stubGenerator) GenerateText(_ context.Context, system, user string) (string, error) {
	s.system, s.user = system, user
	return s.text, s.err
}

func testAIConfig(baseURL string) config.AI {
	return config.AI{APIKey: "sk-test", BaseURL: baseURL, Model: "gpt-3.5-turbo", MaxTokens: 500, Temperature: 0.7}
}

// ── generator ─────────────────────────────────────────────────────────────────

func TestOpenAICompatGenerator_GenerateText(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  hello  "}}]}`))
	}))
	defer srv.Close()

	gen := NewOpenAICompatGenerator(testAIConfig(srv.URL + "/v1"))
	text, err := gen.GenerateText(context.Background(), "sys", "user")

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 500, got.MaxTokens)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
}

func TestOpenAICompatGenerator_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantErr     string
	}{
		{name: "api error message", status: http.StatusUnauthorized, contentType: "application/json", body: `{"error":{"message":"bad key"}}`, wantErr: "bad key"},
		{name: "bare status", status: http.StatusBadGateway, contentType: "text/plain", body: `oops`, wantErr: "502"},
		{name: "no choices", status: http.StatusOK, contentType: "application/json", body: `{"choices":[]}`, wantErr: ErrEmptyResponse.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOpenAICompatGenerator(testAIConfig(srv.URL)).GenerateText(context.Background(), "", "u")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// ── summarizer ────────────────────────────────────────────────────────────────

func TestSummarizer_MockWithoutKey(t *testing.T) {
	s := NewSummarizer(config.AI{}, logger.Nop())
	assert.False(t, s.Enabled())

	got := s.SummarizeDocument(context.Background(), "content", "Practical Analysis", "Matematica")

	assert.Equal(t, "Comprehensive study notes on Practical Analysis, providing detailed insights into Matematica concepts and methodologies.", got.Summary)
	assert.Equal(t, []string{"Matematica", "Analysis", "Applied"}, got.Topics)
	assert.Len(t, got.KeyPoints, 5)
	assert.Equal(t, "intermediate", got.Difficulty)
	assert.Equal(t, 28, got.EstimatedReadTime)
}

func TestMockSummary_ReadTimeBounds(t *testing.T) {
	assert.Equal(t, 5, mockSummary("A", "B").EstimatedReadTime)
	assert.Equal(t, 45, mockSummary(strings.Repeat("x", 60), "B").EstimatedReadTime)
}

func TestSummarizer_FallsBackOnError(t *testing.T) {
	s := NewSummarizerWithGenerator(&stubGenerator{err: errors.New("down")}, logger.Nop())

	got := s.SummarizeDocument(context.Background(), "content", "Theory", "Fisica")

	assert.Equal(t, mockSummary("Theory", "Fisica"), got)
}

func TestSummarizer_ParsesJSON(t *testing.T) {
	gen := &stubGenerator{text: "```json\n{\"summary\":\"S\",\"keyPoints\":[\"a\",\"b\"],\"topics\":[\"t\"],\"difficulty\":\"advanced\",\"estimatedReadTime\":12}\n```"}
	s := NewSummarizerWithGenerator(gen, logger.Nop())

	got := s.SummarizeDocument(context.Background(), strings.Repeat("é", MaxPromptContent+50), "Title", "Chimica")

	assert.Equal(t, models.DocumentSummary{Summary: "S", KeyPoints: []string{"a", "b"}, Topics: []string{"t"}, Difficulty: "advanced", EstimatedReadTime: 12}, got)
	assert.Equal(t, summarySystemPrompt, gen.system)
	assert.Equal(t, MaxPromptContent, strings.Count(gen.user, "é"))
}

func TestSummarizer_UnstructuredAnswer(t *testing.T) {
	s := NewSummarizerWithGenerator(&stubGenerator{text: "Here are some notes"}, logger.Nop())

	got := s.SummarizeDocument(context.Background(), "c", "Calcolo Differenziale e Integrale", "Matematica")

	assert.Equal(t, "Comprehensive notes on Calcolo Differenziale e Integrale covering essential concepts in Matematica.", got.Summary)
	assert.Equal(t, []string{"Matematica", "Calcolo", "Academic Notes"}, got.Topics)
	assert.Len(t, got.KeyPoints, 4)
	assert.Equal(t, 5, got.EstimatedReadTime)
}

// ── metadata ──────────────────────────────────────────────────────────────────

func TestGenerateNFTMetadata(t *testing.T) {
	doc := DocumentInfo{
		Title:      "Fisica Quantistica",
		Subject:    "Fisica",
		University: "Politecnico di Milano",
		Professor:  "Prof. Rossi",
		Summary:    mockSummary("Fisica Quantistica", "Fisica"),
	}

	meta := GenerateNFTMetadata(doc)

	assert.Equal(t, "Fisica Quantistica - Academic NFT", meta.Name)
	assert.True(t, strings.HasSuffix(meta.Description, "premium academic content in Fisica. Key topics include: Fisica."))
	assert.Equal(t, "https://via.placeholder.com/400x400/2563eb/ffffff?text=Fisica", meta.Image)
	require.Len(t, meta.Attributes, 8)
	assert.Equal(t, models.NFTAttribute{TraitType: "Key Points", Value: 5}, meta.Attributes[4])
	assert.Equal(t, models.NFTAttribute{TraitType: "Professor", Value: "Prof. Rossi"}, meta.Attributes[6])
	assert.Equal(t, models.NFTAttribute{TraitType: "Color Scheme", Value: "Purple Gradient"}, meta.Attributes[7])
}

func TestGenerateNFTMetadata_NoProfessor(t *testing.T) {
	meta := GenerateNFTMetadata(DocumentInfo{Title: "T", Subject: "Storia", Summary: mockSummary("T", "Storia")})

	require.Len(t, meta.Attributes, 7)
	assert.Equal(t, DefaultColorScheme, meta.Attributes[6].Value)
}

func TestPlaceholderImage_EscapesSpaces(t *testing.T) {
	assert.Equal(t, "https://via.placeholder.com/400x400/2563eb/ffffff?text=Scienze%20Politiche", PlaceholderImage("Scienze Politiche"))
}

// ── extraction ────────────────────────────────────────────────────────────────

func TestExtractText(t *testing.T) {
	text, err := ExtractText(models.UploadedFile{Name: "notes.txt", ContentType: "text/plain", Data: []byte("plain notes")})
	require.NoError(t, err)
	assert.Equal(t, "plain notes", text)

	text, err = ExtractText(models.UploadedFile{Name: "slides.pptx", ContentType: "application/vnd.ms-powerpoint"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "Mock extracted content from slides.pptx."))

	_, err = ExtractText(models.UploadedFile{Name: "broken.PDF", Data: []byte("not a pdf")})
	assert.Error(t, err)
}
