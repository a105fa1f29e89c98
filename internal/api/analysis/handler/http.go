package analysisHandler

import (
	analysisService "ImageAnalyzer/internal/api/analysis/service"
	"ImageAnalyzer/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"time"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	analysisService analysisService.IAnalysisService
	timeout         time.Duration
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as analysisService.IAnalysisService,
	timeout time.Duration,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: as,
		log:             log,
		validator:       validator,
		middleware:      middleware,
		timeout:         timeout,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	srv.Get("/analysis", h.AnalyzeImage)
	srv.Post("/analysis/invoke", h.Invoke)
}
