package gemini

import (
	"ImageAnalyzer/internal/entity"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/api/option"
)

const labelPrompt = `
List the objects, scenes and concepts visible in this image as labels.
Answer with a JSON array only, one element per label, in English:
[{"name": "Cat", "confidence": 97.5}]
"confidence" is your certainty as a percentage between 0 and 100.
`

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IGemini interface {
	DetectLabels(ctx context.Context, image []byte) ([]entity.Label, error)
	Close()
}

type geminiClient struct {
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName: modelName,
		client:    client,
	}, nil
}

// DetectLabels asks the model for labels and returns them unfiltered.
func (g *geminiClient) DetectLabels(ctx context.Context, image []byte) ([]entity.Label, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image buffer")
	}

	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"

	res, err := model.GenerateContent(ctx, genai.Text(labelPrompt), genai.ImageData(imageFormat(image), image))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, errors.New("unexpected response format from Gemini API")
	}

	return parseLabelResponse(string(text))
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}

// imageFormat returns the image subtype genai.ImageData expects, e.g. "png".
func imageFormat(image []byte) string {
	contentType := http.DetectContentType(image)
	if format, ok := strings.CutPrefix(contentType, "image/"); ok {
		return format
	}
	return "jpeg"
}

func parseLabelResponse(response string) ([]entity.Label, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")

	if start == -1 || end == -1 || end <= start {
		return nil, errors.New("cannot find valid JSON array in response")
	}

	var labels []entity.Label
	if err := json.Unmarshal([]byte(response[start:end+1]), &labels); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini labels: %w", err)
	}

	for i, label := range labels {
		if label.Name == "" {
			return nil, fmt.Errorf("label %d has no name", i)
		}
		if label.Confidence < 0 || label.Confidence > 100 {
			return nil, fmt.Errorf("label %q has confidence %.2f outside [0,100]", label.Name, label.Confidence)
		}
	}

	return labels, nil
}
