package rekognition

import (
	"ImageAnalyzer/internal/entity"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/aws/aws-sdk-go/service/rekognition/rekognitioniface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRekognition struct {
	rekognitioniface.RekognitionAPI
	input  *rekognition.DetectLabelsInput
	output *rekognition.DetectLabelsOutput
	err    error
}

func (m *mockRekognition) DetectLabelsWithContext(_ aws.Context, input *rekognition.DetectLabelsInput, _ ...request.Option) (*rekognition.DetectLabelsOutput, error) {
	m.input = input
	return m.output, m.err
}

func TestDetectLabels(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff}
	mock := &mockRekognition{output: &rekognition.DetectLabelsOutput{
		Labels: []*rekognition.Label{
			{Name: aws.String("Cat"), Confidence: aws.Float64(95.2)},
			{Name: aws.String("Pet"), Confidence: aws.Float64(60)},
		},
	}}

	labels, err := NewWithClient(mock).DetectLabels(context.Background(), image)
	require.NoError(t, err)

	assert.Equal(t, image, mock.input.Image.Bytes)
	assert.Nil(t, mock.input.MinConfidence)
	assert.Equal(t, []entity.Label{
		{Name: "Cat", Confidence: 95.2},
		{Name: "Pet", Confidence: 60},
	}, labels)
}

func TestDetectLabels_ServiceError(t *testing.T) {
	mock := &mockRekognition{err: errors.New("ImageTooLargeException")}

	_, err := NewWithClient(mock).DetectLabels(context.Background(), []byte{0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, mock.err)
}

func TestDetectLabels_EmptyImage(t *testing.T) {
	mock := &mockRekognition{}

	_, err := NewWithClient(mock).DetectLabels(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, mock.input)
}
