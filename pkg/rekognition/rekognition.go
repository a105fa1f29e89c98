package rekognition

import (
	"ImageAnalyzer/internal/entity"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rekognition"
	"github.com/aws/aws-sdk-go/service/rekognition/rekognitioniface"
)

type ItfRekognition interface {
	DetectLabels(ctx context.Context, image []byte) ([]entity.Label, error)
}

type rekognitionClient struct {
	client rekognitioniface.RekognitionAPI
}

func New(sess *session.Session) ItfRekognition {
	return NewWithClient(rekognition.New(sess))
}

func NewWithClient(client rekognitioniface.RekognitionAPI) ItfRekognition {
	return &rekognitionClient{client: client}
}

// DetectLabels returns every label reported for the image, unfiltered.
func (r *rekognitionClient) DetectLabels(ctx context.Context, image []byte) ([]entity.Label, error) {
	if len(image) == 0 {
		return nil, errors.New("empty image buffer")
	}

	out, err := r.client.DetectLabelsWithContext(ctx, &rekognition.DetectLabelsInput{
		Image: &rekognition.Image{
			Bytes: image,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition detect labels: %w", err)
	}

	labels := make([]entity.Label, 0, len(out.Labels))
	for _, l := range out.Labels {
		labels = append(labels, entity.Label{
			Name:       aws.StringValue(l.Name),
			Confidence: aws.Float64Value(l.Confidence),
		})
	}

	return labels, nil
}
