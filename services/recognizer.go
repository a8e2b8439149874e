package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// Recognizer names what is in a photo.
type Recognizer interface {
	Labels(ctx context.Context, dataURI string) ([]string, error)
}

type RekognitionAPI interface {
	DetectLabels(ctx context.Context, in *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionRecognizer struct {
	client RekognitionAPI
}

func NewRekognitionRecognizer(client RekognitionAPI) *RekognitionRecognizer {
	return &RekognitionRecognizer{client: client}
}

func NewRekognitionRecognizerFromConfig(cfg aws.Config) *RekognitionRecognizer {
	return NewRekognitionRecognizer(rekognition.NewFromConfig(cfg))
}

func (r *RekognitionRecognizer) Labels(ctx context.Context, dataURI string) ([]string, error) {
	_, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, fmt.Errorf("detect labels: %w", err)
	}

	var labels []string
	for _, l := range out.Labels {
		if l.Name != nil {
			labels = append(labels, *l.Name)
		}
	}
	if len(labels) == 0 {
		return nil, errors.New("no labels detected")
	}
	return labels, nil
}
