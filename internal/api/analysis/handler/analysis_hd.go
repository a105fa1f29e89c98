package analysisHandler

import (
	"ImageAnalyzer/internal/api/analysis"
	contextPkg "ImageAnalyzer/pkg/context"
	"ImageAnalyzer/pkg/handlerUtil"
	"ImageAnalyzer/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// Main runs one analysis invocation. It returns 200 with the formatted body on
// success and the generic 500 response on any failure.
func (h *AnalysisHandler) Main(ctx context.Context, event analysis.Event) analysis.Response {
	requestID := contextPkg.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	req := event.ToRequest()
	if err := h.validator.Struct(req); err != nil {
		return errHandler.Handle(requestID, analysis.NewStageError(analysis.FetchError, err), "validate_event")
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"image_url":  req.ImageURL,
	}).Debug("Processing image analysis request")

	body, err := h.analysisService.AnalyzeImage(ctx, req.ImageURL)
	if err != nil {
		return errHandler.Handle(requestID, err, "analyze_image")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"image_url":  req.ImageURL,
	}).Info("Image analysis successful")

	return errHandler.HandleSuccess(body)
}

func (h *AnalysisHandler) AnalyzeImage(ctx *fiber.Ctx) error {
	event := analysis.Event{
		QueryStringParameters: ctx.Queries(),
	}

	resp := h.Main(contextPkg.FromFiberCtx(ctx), event)

	return handlerUtil.New(h.log).Reply(ctx, resp)
}

func (h *AnalysisHandler) Invoke(ctx *fiber.Ctx) error {
	c := contextPkg.FromFiberCtx(ctx)
	errHandler := handlerUtil.New(h.log)

	var event analysis.Event
	if err := ctx.BodyParser(&event); err != nil {
		resp := errHandler.Handle(h.middleware.GetRequestID(ctx), analysis.NewStageError(analysis.FetchError, err), "parse_event")
		return errHandler.ReplyJSON(ctx, resp)
	}

	return errHandler.ReplyJSON(ctx, h.Main(c, event))
}
