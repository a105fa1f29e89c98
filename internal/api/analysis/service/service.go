package analysisService

import (
	"ImageAnalyzer/internal/entity"
	"ImageAnalyzer/pkg/fetcher"
	"ImageAnalyzer/pkg/translate"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAnalysisService interface {
	FetchImage(ctx context.Context, imageURL string) ([]byte, error)
	DetectImageLabels(ctx context.Context, image []byte) ([]entity.Label, string, error)
	TranslateText(ctx context.Context, text string) ([]string, error)
	FormatTextResults(labels []entity.Label, texts []string) ([]string, error)
	AnalyzeImage(ctx context.Context, imageURL string) (string, error)
}

// LabelDetector is implemented by every label detection backend.
type LabelDetector interface {
	DetectLabels(ctx context.Context, image []byte) ([]entity.Label, error)
}

type Config struct {
	// StrictAlignment rejects translations whose segment count differs from
	// the label count instead of truncating to the shorter sequence.
	StrictAlignment bool
}

type analysisService struct {
	log        *logrus.Logger
	fetcher    fetcher.ItfFetcher
	detector   LabelDetector
	translator translate.ItfTranslate
	config     Config
}

func NewAnalysisService(
	log *logrus.Logger,
	fetcher fetcher.ItfFetcher,
	detector LabelDetector,
	translator translate.ItfTranslate,
	config Config,
) IAnalysisService {
	return &analysisService{
		log:        log,
		fetcher:    fetcher,
		detector:   detector,
		translator: translator,
		config:     config,
	}
}
