package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/models"
)

// MaxPromptContent caps how much document text is sent to the backend.
const MaxPromptContent = 3000

// DifficultyIntermediate is the difficulty assigned when none is known.
const DifficultyIntermediate = "intermediate"

const summarySystemPrompt = `You are an AI assistant that creates academic document summaries.
Analyze the provided document and create a comprehensive summary including:
- Main summary (2-3 sentences)
- Key points (3-5 bullet points)
- Main topics covered
- Difficulty level assessment (beginner, intermediate or advanced)
- Estimated reading time in minutes
Answer with a JSON object with the fields summary, keyPoints, topics, difficulty and estimatedReadTime.`

// Summarizer produces document summaries. Without a generator every summary
// is the deterministic mock.
type Summarizer struct {
	generator TextGenerator
	logger    *logger.Logger
}

// NewSummarizer uses an OpenAI-compatible generator when cfg carries an API
// key.
func NewSummarizer(cfg config.AI, log *logger.Logger) *Summarizer {
	var gen TextGenerator
	if strings.TrimSpace(cfg.APIKey) != "" {
		gen = NewOpenAICompatGenerator(cfg)
	}
	return NewSummarizerWithGenerator(gen, log)
}

// NewSummarizerWithGenerator builds a Summarizer around gen, which may be nil.
func NewSummarizerWithGenerator(gen TextGenerator, log *logger.Logger) *Summarizer {
	return &Summarizer{generator: gen, logger: log}
}

// Enabled reports whether summaries come from a real backend.
func (s *Summarizer) Enabled() bool {
	return s.generator != nil
}

// SummarizeDocument never fails: a missing backend or a backend error yields
// the mock summary.
func (s *Summarizer) SummarizeDocument(ctx context.Context, content, title, subject string) models.DocumentSummary {
	if s.generator == nil {
		return mockSummary(title, subject)
	}

	if utf8.RuneCountInString(content) > MaxPromptContent {
		content = string([]rune(content)[:MaxPromptContent])
	}
	prompt := fmt.Sprintf("Document Title: %s\nSubject: %s\nContent: %s...", title, subject, content)

	text, err := s.generator.GenerateText(ctx, summarySystemPrompt, prompt)
	if err != nil {
		s.logger.Err(err).Str("func", "*Summarizer.SummarizeDocument").Msg("summarization failed, using mock summary")
		return mockSummary(title, subject)
	}

	return parseSummary(text, title, subject)
}

// parseSummary reads the JSON answer of the backend. Answers that are not
// usable JSON get a fixed-shape summary built from the title and subject.
func parseSummary(text, title, subject string) models.DocumentSummary {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")

	var parsed models.DocumentSummary
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &parsed); err == nil && parsed.Summary != "" {
		if len(parsed.Topics) == 0 {
			parsed.Topics = []string{subject}
		}
		if parsed.KeyPoints == nil {
			parsed.KeyPoints = []string{}
		}
		if parsed.Difficulty == "" {
			parsed.Difficulty = DifficultyIntermediate
		}
		if parsed.EstimatedReadTime <= 0 {
			parsed.EstimatedReadTime = clamp(utf8.RuneCountInString(title)/10, 5, 30)
		}
		return parsed
	}

	firstWord := title
	if fields := strings.Fields(title); len(fields) > 0 {
		firstWord = fields[0]
	}

	return models.DocumentSummary{
		Summary: fmt.Sprintf("Comprehensive notes on %s covering essential concepts in %s.", title, subject),
		KeyPoints: []string{
			"Fundamental concepts and definitions",
			"Key theories and principles",
			"Practical applications and examples",
			"Important formulas and methodologies",
		},
		Topics:            []string{subject, firstWord, "Academic Notes"},
		Difficulty:        DifficultyIntermediate,
		EstimatedReadTime: clamp(utf8.RuneCountInString(title)/10, 5, 30),
	}
}

func mockSummary(title, subject string) models.DocumentSummary {
	topics := []string{subject}
	lower := strings.ToLower(title)
	if strings.Contains(lower, "analysis") {
		topics = append(topics, "Analysis")
	}
	if strings.Contains(lower, "theory") {
		topics = append(topics, "Theory")
	}
	if strings.Contains(lower, "practical") {
		topics = append(topics, "Applied")
	}

	return models.DocumentSummary{
		Summary: fmt.Sprintf("Comprehensive study notes on %s, providing detailed insights into %s concepts and methodologies.", title, subject),
		KeyPoints: []string{
			"Core theoretical foundations and principles",
			"Step-by-step problem-solving approaches",
			"Real-world applications and case studies",
			"Key formulas and important definitions",
			"Practice exercises and examples",
		},
		Topics:            topics,
		Difficulty:        DifficultyIntermediate,
		EstimatedReadTime: clamp(utf8.RuneCountInString(title)+utf8.RuneCountInString(subject), 5, 45),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
