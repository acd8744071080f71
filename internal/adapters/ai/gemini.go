// Package ai implements the external classification collaborator on top of
// the Gemini API. The core treats it as a black box: a nil or missing
// suggestion means "leave uncategorized", never an error.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/penwald/envelope_budget_app/internal/core/domain"
	portssvc "github.com/penwald/envelope_budget_app/internal/core/ports/services"
)

// DefaultModelName is used when no model is configured.
const DefaultModelName = "gemini-2.0-flash"

// GeminiClassifier suggests category ids for transaction descriptions.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

// NewGeminiClassifier creates a classifier backed by the Gemini API.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiClassifier{client: client, model: model}, nil
}

var _ portssvc.Classifier = (*GeminiClassifier)(nil)

// Classify suggests a category id for one description, or nil when the
// model cannot place it.
func (g *GeminiClassifier) Classify(ctx context.Context, description string, categories []domain.Category) (*string, error) {
	result, err := g.ClassifyBatch(ctx, []string{description}, categories)
	if err != nil {
		return nil, err
	}
	categoryID, ok := result[description]
	if !ok {
		return nil, nil
	}
	return &categoryID, nil
}

// ClassifyBatch suggests category ids for many descriptions in one model
// call. Descriptions the model cannot place are absent from the result.
func (g *GeminiClassifier) ClassifyBatch(ctx context.Context, descriptions []string, categories []domain.Category) (map[string]string, error) {
	if len(descriptions) == 0 || len(categories) == 0 {
		return map[string]string{}, nil
	}

	prompt := buildClassifyPrompt(descriptions, categories)
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	var parsed map[string]*string
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &parsed); err != nil {
		return nil, fmt.Errorf("decode model output: %w", err)
	}

	valid := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		valid[cat.CategoryID] = struct{}{}
	}

	result := make(map[string]string)
	for description, categoryID := range parsed {
		if categoryID == nil {
			continue
		}
		if _, known := valid[*categoryID]; !known {
			continue // hallucinated id; treat as no suggestion
		}
		result[description] = *categoryID
	}
	return result, nil
}

func buildClassifyPrompt(descriptions []string, categories []domain.Category) string {
	var b strings.Builder
	b.WriteString("You are a personal-finance transaction categorizer.\n\n")
	b.WriteString("Available categories (id: name):\n")
	for _, cat := range categories {
		fmt.Fprintf(&b, "- %s: %s\n", cat.CategoryID, cat.Name)
	}
	b.WriteString("\nAssign each transaction description below to the most appropriate category.\n")
	b.WriteString("Output STRICT JSON only: a single object mapping each description verbatim to a category id, or to null when none fits.\n")
	b.WriteString("Do NOT wrap the response in code fences. Output must begin with \"{\" and end with \"}\".\n\n")
	b.WriteString("Descriptions:\n")
	for _, description := range descriptions {
		fmt.Fprintf(&b, "- %q\n", description)
	}
	return b.String()
}

// cleanModelJSON strips Markdown fences and surrounding prose if the model
// ignored the strict-JSON instruction.
func cleanModelJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)

	if start := strings.Index(clean, "{"); start > 0 {
		clean = clean[start:]
	}
	if end := strings.LastIndex(clean, "}"); end >= 0 && end < len(clean)-1 {
		clean = clean[:end+1]
	}
	return clean
}
