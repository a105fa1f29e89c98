package config

import (
	analysisHandler "ImageAnalyzer/internal/api/analysis/handler"
	analysisService "ImageAnalyzer/internal/api/analysis/service"
	"ImageAnalyzer/internal/middleware"
	"ImageAnalyzer/pkg/awssession"
	"ImageAnalyzer/pkg/fetcher"
	"ImageAnalyzer/pkg/gemini"
	"ImageAnalyzer/pkg/rekognition"
	"ImageAnalyzer/pkg/translate"
	"ImageAnalyzer/pkg/utils"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	DetectorRekognition = "rekognition"
	DetectorGemini      = "gemini"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	awsSession     *session.Session
	fetcher        fetcher.ItfFetcher
	labelDetector  analysisService.LabelDetector
	translator     translate.ItfTranslate
	geminiClient   gemini.IGemini
	analysisConfig analysisService.Config
	timeout        time.Duration
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.labelDetector == nil {
		return nil, fmt.Errorf("label detector is required")
	}
	if server.translator == nil {
		return nil, fmt.Errorf("translator is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.utils == nil {
			s.utils = utils.New()
		}
		s.middleware = middleware.New(s.log, s.utils)
		return nil
	}
}

func WithAWSSession() ServerOption {
	return func(s *Server) error {
		sess, err := awssession.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create AWS session: %v", err)
			}
			return fmt.Errorf("failed to create AWS session: %w", err)
		}
		s.awsSession = sess
		return nil
	}
}

func WithFetcher(f fetcher.ItfFetcher) ServerOption {
	return func(s *Server) error {
		s.fetcher = f
		return nil
	}
}

// WithLabelDetector picks the label detection backend from LABEL_DETECTOR.
func WithLabelDetector() ServerOption {
	return func(s *Server) error {
		provider := strings.ToLower(os.Getenv("LABEL_DETECTOR"))

		switch provider {
		case "", DetectorRekognition:
			if s.awsSession == nil {
				return fmt.Errorf("AWS session must be initialized before the rekognition detector")
			}
			s.labelDetector = rekognition.New(s.awsSession)
		case DetectorGemini:
			client, err := gemini.NewGeminiClient()
			if err != nil {
				if s.log != nil {
					s.log.Errorf("Failed to create Gemini client: %v", err)
				}
				return fmt.Errorf("failed to create Gemini client: %w", err)
			}
			s.geminiClient = client
			s.labelDetector = client
		default:
			return fmt.Errorf("unknown label detector %q", provider)
		}

		if s.log != nil {
			s.log.Infof("Using %s label detector", orDefault(provider, DetectorRekognition))
		}
		return nil
	}
}

func WithDetector(detector analysisService.LabelDetector) ServerOption {
	return func(s *Server) error {
		s.labelDetector = detector
		return nil
	}
}

func WithTranslator(translator translate.ItfTranslate) ServerOption {
	return func(s *Server) error {
		s.translator = translator
		return nil
	}
}

func WithTranslateClient() ServerOption {
	return func(s *Server) error {
		if s.awsSession == nil {
			return fmt.Errorf("AWS session must be initialized before the translate client")
		}
		s.translator = translate.New(s.awsSession)
		return nil
	}
}

// WithAnalysisConfig reads ANALYSIS_TIMEOUT and STRICT_LABEL_ALIGNMENT.
func WithAnalysisConfig() ServerOption {
	return func(s *Server) error {
		if raw := os.Getenv("ANALYSIS_TIMEOUT"); raw != "" {
			timeout, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("invalid ANALYSIS_TIMEOUT %q: %w", raw, err)
			}
			s.timeout = timeout
		}

		if raw := os.Getenv("STRICT_LABEL_ALIGNMENT"); raw != "" {
			strict, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("invalid STRICT_LABEL_ALIGNMENT %q: %w", raw, err)
			}
			s.analysisConfig.StrictAlignment = strict
		}

		return nil
	}
}

func (s *Server) RegisterHandler() {
	if s.fetcher == nil {
		s.fetcher = fetcher.New()
	}
	if s.validator == nil {
		s.validator = NewValidator()
	}
	if s.middleware == nil {
		if s.utils == nil {
			s.utils = utils.New()
		}
		s.middleware = middleware.New(s.log, s.utils)
	}

	analysisServices := analysisService.NewAnalysisService(s.log, s.fetcher, s.labelDetector, s.translator, s.analysisConfig)
	analysisHandlers := analysisHandler.New(s.log, s.validator, s.middleware, analysisServices, s.timeout)

	s.handlers = append(s.handlers, analysisHandlers)
}

// Mount attaches the middleware and every registered handler to the engine
// and returns it.
func (s *Server) Mount() *fiber.App {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.setupHealthCheck()
	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	return s.engine
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown() error {
	if s.geminiClient != nil {
		s.geminiClient.Close()
	}
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
