package analysisService

import (
	"ImageAnalyzer/internal/api/analysis"
	"ImageAnalyzer/internal/entity"
	contextPkg "ImageAnalyzer/pkg/context"
	"ImageAnalyzer/pkg/log"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *analysisService) entry(ctx context.Context) *logrus.Entry {
	return s.log.WithField(log.RequestIDKey, contextPkg.GetRequestID(ctx))
}

func (s *analysisService) FetchImage(ctx context.Context, imageURL string) ([]byte, error) {
	image, err := s.fetcher.GetImage(ctx, imageURL)
	if err != nil {
		return nil, analysis.NewStageError(analysis.FetchError, err)
	}
	return image, nil
}

// DetectImageLabels returns the labels above the confidence threshold and
// their names joined for translation.
func (s *analysisService) DetectImageLabels(ctx context.Context, image []byte) ([]entity.Label, string, error) {
	detected, err := s.detector.DetectLabels(ctx, image)
	if err != nil {
		return nil, "", analysis.NewStageError(analysis.DetectionError, err)
	}

	labels := analysis.FilterLabels(detected)

	s.entry(ctx).WithFields(log.Fields{
		"detected": len(detected),
		"kept":     len(labels),
	}).Debug("Labels detected")

	return labels, analysis.JoinLabelNames(labels), nil
}

// TranslateText translates the joined label names and splits the result back
// into one segment per label. Empty text yields no segments without calling
// the translator.
func (s *analysisService) TranslateText(ctx context.Context, text string) ([]string, error) {
	if text == "" {
		return []string{}, nil
	}

	translated, err := s.translator.TranslateText(ctx, text, analysis.SourceLanguage, analysis.TargetLanguage)
	if err != nil {
		return nil, analysis.NewStageError(analysis.TranslationError, err)
	}

	return analysis.SplitTranslation(translated), nil
}

func (s *analysisService) FormatTextResults(labels []entity.Label, texts []string) ([]string, error) {
	pairs, err := analysis.PairTranslations(labels, texts, s.config.StrictAlignment)
	if err != nil {
		return nil, err
	}

	return analysis.FormatResults(pairs), nil
}

func (s *analysisService) AnalyzeImage(ctx context.Context, imageURL string) (string, error) {
	image, err := s.FetchImage(ctx, imageURL)
	if err != nil {
		return "", err
	}

	labels, names, err := s.DetectImageLabels(ctx, image)
	if err != nil {
		return "", err
	}

	texts, err := s.TranslateText(ctx, names)
	if err != nil {
		return "", err
	}

	if len(labels) != len(texts) {
		s.entry(ctx).WithFields(log.Fields{
			"labels":   len(labels),
			"segments": len(texts),
			"strict":   s.config.StrictAlignment,
		}).Warn("Translated segments do not line up with labels")
	}

	lines, err := s.FormatTextResults(labels, texts)
	if err != nil {
		return "", err
	}

	return analysis.FormatBody(lines), nil
}
