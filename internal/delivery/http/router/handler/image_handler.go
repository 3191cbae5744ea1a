package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "carhub/internal/delivery/context"
	"carhub/internal/delivery/http/response"
	"carhub/internal/domain/service"
	"carhub/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageCacheControl = "public, max-age=31536000, immutable"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	Reader service.ImageReader
	Logger *slog.Logger
}

// ImageHandler streams stored car images when no CDN fronts the bucket.
type ImageHandler struct {
	reader service.ImageReader
	logger *slog.Logger
}

func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		reader: params.Reader,
		logger: params.Logger,
	}
}

// ServeImage streams the object named by the wildcard path. Object keys are
// never reused, so responses are cached indefinitely.
func (h *ImageHandler) ServeImage(c echo.Context) error {
	key := pathParam(c, "*")

	rc, contentType, err := h.reader.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrImageObjectNotFound) {
			return response.NotFound(c, "IMAGE_NOT_FOUND", "image not found")
		}

		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to open image", slog.String("key", key), slog.Any("error", err))

		return errors.WithStack(err)
	}
	defer rc.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set("Cache-Control", imageCacheControl)

	return c.Stream(http.StatusOK, contentType, rc)
}
