package gemini

import (
	"ImageAnalyzer/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabelResponse(t *testing.T) {
	response := "```json\n[{\"name\": \"Cat\", \"confidence\": 97.5}, {\"name\": \"Sofa\", \"confidence\": 71}]\n```"

	labels, err := parseLabelResponse(response)
	require.NoError(t, err)
	assert.Equal(t, []entity.Label{
		{Name: "Cat", Confidence: 97.5},
		{Name: "Sofa", Confidence: 71},
	}, labels)
}

func TestParseLabelResponse_Invalid(t *testing.T) {
	cases := map[string]string{
		"no array":         `{"name": "Cat"}`,
		"broken json":      `[{"name": "Cat", "confidence": }]`,
		"missing name":     `[{"confidence": 90}]`,
		"confidence range": `[{"name": "Cat", "confidence": 140}]`,
	}

	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseLabelResponse(response)
			assert.Error(t, err)
		})
	}
}

func TestParseLabelResponse_EmptyArray(t *testing.T) {
	labels, err := parseLabelResponse("[]")
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestImageFormat(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	assert.Equal(t, "png", imageFormat(png))
	assert.Equal(t, "jpeg", imageFormat([]byte("plain text")))
}
