package handler

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"carhub/config"
	deliverycontext "carhub/internal/delivery/context"
	"carhub/internal/delivery/http/response"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/service"
	"carhub/internal/errors"
	"carhub/internal/usecase"
	"carhub/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imagesField = "images"

// CarHandlerParams holds dependencies for CarHandler, injected by Fx.
type CarHandlerParams struct {
	fx.In

	CarUC  usecase.CarUsecase
	Config *config.Config
	Logger *slog.Logger
}

// CarHandler exposes the owner-scoped car listing operations.
type CarHandler struct {
	carUC        usecase.CarUsecase
	logger       *slog.Logger
	maxImageSize int64
}

// NewCarHandler is the constructor for CarHandler
func NewCarHandler(params CarHandlerParams) *CarHandler {
	h := &CarHandler{
		carUC:  params.CarUC,
		logger: params.Logger,
	}
	if params.Config != nil && params.Config.ImageStore != nil {
		h.maxImageSize = params.Config.ImageStore.MaxFileSize
	}

	return h
}

// UpdateCarRequest is the body of PUT /cars/:id. Absent or empty fields are left unchanged.
type UpdateCarRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Company     *string `json:"company" form:"company"`
	CarType     *string `json:"carType" form:"carType"`
	Dealer      *string `json:"dealer" form:"dealer"`
}

// DeleteImageRequest is the body of DELETE /cars/images.
type DeleteImageRequest struct {
	CarID    string `json:"carId" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// CreateCar handles multipart car creation with its images.
func (h *CarHandler) CreateCar(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	files, err := h.multipartFiles(c)
	if err != nil {
		return err
	}

	images, closeImages, err := h.openImages(files)
	if err != nil {
		return err
	}
	defer closeImages()

	car, err := h.carUC.CreateCar(c.Request().Context(), ownerID, &usecase.CreateCarInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Company:     c.FormValue("company"),
		CarType:     c.FormValue("carType"),
		Dealer:      c.FormValue("dealer"),
		Images:      images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCarResponse(car))
}

// ListMyCars returns every car owned by the caller.
func (h *CarHandler) ListMyCars(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	cars, err := h.carUC.ListMyCars(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponses(cars))
}

// SearchCars runs a case-insensitive substring search over the caller's cars.
func (h *CarHandler) SearchCars(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	cars, err := h.carUC.SearchCars(c.Request().Context(), ownerID, pathParam(c, "query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponses(cars))
}

// GetCar returns one of the caller's cars.
func (h *CarHandler) GetCar(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	car, err := h.carUC.GetCar(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car))
}

// UpdateCar applies a partial update to one of the caller's cars.
func (h *CarHandler) UpdateCar(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req UpdateCarRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid car update input")
	}

	car, err := h.carUC.UpdateCar(c.Request().Context(), ownerID, c.Param("id"), &usecase.UpdateCarInput{
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		CarType:     req.CarType,
		Dealer:      req.Dealer,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car))
}

// UploadImages appends multipart images to an existing car.
func (h *CarHandler) UploadImages(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	files, err := h.multipartFiles(c)
	if err != nil {
		return err
	}

	images, closeImages, err := h.openImages(files)
	if err != nil {
		return err
	}
	defer closeImages()

	car, err := h.carUC.UploadImages(c.Request().Context(), ownerID, c.FormValue("carId"), images)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car))
}

// DeleteImage removes one image reference from a car.
func (h *CarHandler) DeleteImage(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image deletion input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	car, err := h.carUC.DeleteImage(c.Request().Context(), ownerID, req.CarID, req.ImageURL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car))
}

// DeleteCar removes one of the caller's cars.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	ownerID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	carID := c.Param("id")
	if err := h.carUC.DeleteCar(c.Request().Context(), ownerID, carID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":      carID,
		"message": "Car deleted successfully",
	})
}

// multipartFiles returns the uploaded image parts in request order. A body
// that is not multipart simply carries no files.
func (h *CarHandler) multipartFiles(c echo.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, err
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart body")
	}

	return form.File[imagesField], nil
}

// openImages size-checks and sniffs every file. The returned func closes all
// opened parts and must be called once the images have been consumed.
func (h *CarHandler) openImages(files []*multipart.FileHeader) ([]service.ImageFile, func(), error) {
	images := make([]service.ImageFile, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	closeAll := func() {
		for _, cl := range closers {
			_ = cl.Close()
		}
	}

	for _, fh := range files {
		if h.maxImageSize > 0 && fh.Size > h.maxImageSize {
			closeAll()

			return nil, nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("image %q exceeds the %s limit", fh.Filename, util.FormatBytes(h.maxImageSize)))
		}

		f, err := fh.Open()
		if err != nil {
			closeAll()

			return nil, nil, errors.Wrapf(err, "failed to open upload %s", fh.Filename)
		}
		closers = append(closers, f)

		contentType, r, err := util.SniffContentType(f)
		if err != nil {
			closeAll()

			return nil, nil, errors.WithStack(err)
		}
		if !strings.HasPrefix(contentType, "image/") {
			closeAll()

			return nil, nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("file %q is not an image", fh.Filename))
		}

		images = append(images, service.ImageFile{
			Name:        fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			Reader:      r,
		})
	}

	return images, closeAll, nil
}

// pathParam returns a decoded path parameter. Echo leaves parameters escaped
// when the request path needed escaping.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}

	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}

	return value
}
