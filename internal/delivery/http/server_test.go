package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"carhub/config"
	deliverycontext "carhub/internal/delivery/context"
	httpmiddleware "carhub/internal/delivery/http/middleware"
	"carhub/internal/delivery/http/router"
	"carhub/internal/delivery/http/router/handler"
	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/service"
	"carhub/internal/errors"
	servicemocks "carhub/internal/mocks/service"
	usecasemocks "carhub/internal/mocks/usecase"
	"carhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken   = "valid-token"
	maxImageSize = 1024
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

type testServer struct {
	echo    *echo.Echo
	ownerID uuid.UUID
	cars    *usecasemocks.MockCarUsecase
	users   *usecasemocks.MockUserUsecase
	tokens  *servicemocks.MockTokenService
	images  *servicemocks.MockImageReader
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		ImageStore: &config.ImageStoreConfig{PublicBaseURL: "/images", MaxFileSize: maxImageSize},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	logger := slog.New(slog.DiscardHandler)
	ts := &testServer{
		echo:    NewEcho(cfg, logger),
		ownerID: uuid.New(),
		cars:    usecasemocks.NewMockCarUsecase(t),
		users:   usecasemocks.NewMockUserUsecase(t),
		tokens:  servicemocks.NewMockTokenService(t),
		images:  servicemocks.NewMockImageReader(t),
	}

	router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: ts.users, Logger: logger}),
		CarHandler:     handler.NewCarHandler(handler.CarHandlerParams{CarUC: ts.cars, Config: cfg, Logger: logger}),
		ImageHandler:   handler.NewImageHandler(handler.ImageHandlerParams{Reader: ts.images, Logger: logger}),
		AuthMiddleware: httpmiddleware.NewAuthMiddleware(ts.tokens, logger),
		Config:         cfg,
	}).RegisterRoutes(ts.echo)

	return ts
}

// authorize makes validToken resolve to ts.ownerID.
func (ts *testServer) authorize() {
	ts.tokens.EXPECT().ValidateAccessToken(validToken).
		Return(&service.Claims{UserID: ts.ownerID, Type: service.TokenTypeAccess}, nil)
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func authed(req *http.Request) *http.Request {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)

	return req
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

type upload struct {
	name    string
	content []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files ...upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		part, err := w.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func storedCar(ownerID uuid.UUID) *entity.Car {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Car{
		ID:          uuid.New(),
		Title:       "Civic",
		Description: "Clean title, one owner",
		Tags:        entity.CarTags{Company: "Honda", CarType: "Sedan", Dealer: "Bay Motors"},
		Images:      []string{"/images/cars/a.png"},
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := ts.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, "req-42", env.Meta.RequestID)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		assert.Nil(t, env.Error.Details, "details are hidden on 401")
	})

	t.Run("not a bearer token", func(t *testing.T) {
		ts := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc")
		rec := ts.do(req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		ts := newTestServer(t)
		ts.tokens.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		rec := ts.do(req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
	})
}

func TestCreateCar(t *testing.T) {
	fields := map[string]string{
		"title":       "Civic",
		"description": "Clean title, one owner",
		"company":     "Honda",
		"carType":     "Sedan",
		"dealer":      "Bay Motors",
	}

	t.Run("passes fields and images in order", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()
		car := storedCar(ts.ownerID)

		ts.cars.EXPECT().CreateCar(mock.Anything, ts.ownerID, mock.MatchedBy(func(in *usecase.CreateCarInput) bool {
			return in.Title == "Civic" && in.Company == "Honda" && in.CarType == "Sedan" && in.Dealer == "Bay Motors" &&
				len(in.Images) == 2 &&
				in.Images[0].Name == "front.png" && in.Images[0].ContentType == "image/png" &&
				in.Images[1].Name == "back.jpg" && in.Images[1].ContentType == "image/jpeg"
		})).Return(car, nil)

		req := multipartRequest(t, "/api/v1/cars", fields,
			upload{name: "front.png", content: append(append([]byte{}, pngHeader...), 1, 2, 3)},
			upload{name: "back.jpg", content: []byte("\xff\xd8\xff\xe0 jpeg")},
		)
		rec := ts.do(authed(req))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var got struct {
			ID     string            `json:"id"`
			Tags   map[string]string `json:"tags"`
			Images []string          `json:"images"`
			Owner  string            `json:"owner"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, car.ID.String(), got.ID)
		assert.Equal(t, map[string]string{"company": "Honda", "carType": "Sedan", "dealer": "Bay Motors"}, got.Tags)
		assert.Equal(t, car.Images, got.Images)
		assert.Equal(t, ts.ownerID.String(), got.Owner)
	})

	t.Run("rejects non image files", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()

		req := multipartRequest(t, "/api/v1/cars", fields, upload{name: "notes.txt", content: []byte("hello")})
		rec := ts.do(authed(req))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "notes.txt")
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()

		big := append(append([]byte{}, pngHeader...), make([]byte, maxImageSize)...)
		req := multipartRequest(t, "/api/v1/cars", fields, upload{name: "big.png", content: big})
		rec := ts.do(authed(req))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "1.0 KB")
	})

	t.Run("surfaces validation errors with details", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()
		ts.cars.EXPECT().CreateCar(mock.Anything, ts.ownerID, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("missing: images"))

		req := multipartRequest(t, "/api/v1/cars", fields)
		rec := ts.do(authed(req))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "missing: images", env.Error.Details)
	})
}

func TestGetCar(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()
		car := storedCar(ts.ownerID)
		ts.cars.EXPECT().GetCar(mock.Anything, ts.ownerID, car.ID.String()).Return(car, nil)

		rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/cars/"+car.ID.String(), nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), car.ID.String())
	})

	t.Run("foreign car looks missing", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()
		ts.cars.EXPECT().GetCar(mock.Anything, ts.ownerID, "abc").
			Return(nil, errors.Wrap(domainerrors.ErrCarAccessDenied, "get car"))

		rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/cars/abc", nil)))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "CAR_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestListMyCars_StoreFailureHidesDetails(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	ts.cars.EXPECT().ListMyCars(mock.Anything, ts.ownerID).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "find cars by owner"))

	rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Nil(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestListMyCars_EmptyIsArray(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	ts.cars.EXPECT().ListMyCars(mock.Anything, ts.ownerID).Return(nil, nil)

	rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestSearchCars_DecodesQuery(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	ts.cars.EXPECT().SearchCars(mock.Anything, ts.ownerID, "red/car 50%").Return([]*entity.Car{storedCar(ts.ownerID)}, nil)

	rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/cars/search/red%2Fcar%2050%25", nil)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateCar_PartialBody(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	car := storedCar(ts.ownerID)

	ts.cars.EXPECT().UpdateCar(mock.Anything, ts.ownerID, car.ID.String(), mock.MatchedBy(func(in *usecase.UpdateCarInput) bool {
		return in.Title != nil && *in.Title == "Accord" && in.Description == nil && in.Company == nil
	})).Return(car, nil)

	rec := ts.do(authed(jsonRequest(http.MethodPut, "/api/v1/cars/"+car.ID.String(), `{"title":"Accord"}`)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUploadImages(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	car := storedCar(ts.ownerID)

	ts.cars.EXPECT().UploadImages(mock.Anything, ts.ownerID, car.ID.String(), mock.MatchedBy(func(images []service.ImageFile) bool {
		return len(images) == 1 && images[0].Name == "side.png"
	})).Return(car, nil)

	req := multipartRequest(t, "/api/v1/cars/images", map[string]string{"carId": car.ID.String()},
		upload{name: "side.png", content: pngHeader})
	rec := ts.do(authed(req))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDeleteImage(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	car := storedCar(ts.ownerID)

	ts.cars.EXPECT().DeleteImage(mock.Anything, ts.ownerID, car.ID.String(), "/images/cars/a.png").Return(car, nil)

	body := `{"carId":"` + car.ID.String() + `","imageUrl":"/images/cars/a.png"}`
	rec := ts.do(authed(jsonRequest(http.MethodDelete, "/api/v1/cars/images", body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestDeleteCar(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	carID := uuid.NewString()
	ts.cars.EXPECT().DeleteCar(mock.Anything, ts.ownerID, carID).Return(nil)

	rec := ts.do(authed(httptest.NewRequest(http.MethodDelete, "/api/v1/cars/"+carID, nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), "Car deleted successfully")
}

func TestServeImage(t *testing.T) {
	t.Run("streams stored object", func(t *testing.T) {
		ts := newTestServer(t)
		ts.images.EXPECT().Open(mock.Anything, "cars/a.png").
			Return(io.NopCloser(bytes.NewReader(pngHeader)), "image/png", nil)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/images/cars/a.png", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, pngHeader, rec.Body.Bytes())
		assert.NotEmpty(t, rec.Header().Get("Cache-Control"))
	})

	t.Run("unknown object", func(t *testing.T) {
		ts := newTestServer(t)
		ts.images.EXPECT().Open(mock.Anything, "cars/missing.png").
			Return(nil, "", service.ErrImageObjectNotFound)

		rec := ts.do(httptest.NewRequest(http.MethodGet, "/images/cars/missing.png", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "IMAGE_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestUserRoutes(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "ann@example.com", Name: "Ann"}

	t.Run("register", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().RegisterUser(mock.Anything, &usecase.RegisterUserInput{
			Name: "Ann", Email: "ann@example.com", Password: "secret-pass",
		}).Return(&usecase.RegisterOutput{User: user}, nil)

		rec := ts.do(jsonRequest(http.MethodPost, "/auth/register",
			`{"name":"Ann","email":"ann@example.com","password":"secret-pass"}`))

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Contains(t, string(decode(t, rec).Data), "ann@example.com")
		assert.NotContains(t, rec.Body.String(), "secret-pass")
	})

	t.Run("duplicate email", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().RegisterUser(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		rec := ts.do(jsonRequest(http.MethodPost, "/auth/register", `{"name":"Ann","email":"ann@example.com","password":"x"}`))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})

	t.Run("login", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ann@example.com", Password: "secret-pass"}).
			Return(&usecase.LoginOutput{AccessToken: "a", RefreshToken: "r", User: user}, nil)

		rec := ts.do(jsonRequest(http.MethodPost, "/auth/login", `{"email":"ann@example.com","password":"secret-pass"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, "a", got.AccessToken)
		assert.Equal(t, "r", got.RefreshToken)
	})

	t.Run("refresh and logout", func(t *testing.T) {
		ts := newTestServer(t)
		ts.users.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "r"}).
			Return(&usecase.RefreshTokenOutput{AccessToken: "a2"}, nil)
		ts.users.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "r"}).Return(nil)

		rec := ts.do(jsonRequest(http.MethodPost, "/auth/refresh", `{"refreshToken":"r"}`))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), "a2")

		rec = ts.do(jsonRequest(http.MethodPost, "/auth/logout", `{"refreshToken":"r"}`))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("logout requires refresh token", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(jsonRequest(http.MethodPost, "/auth/logout", `{}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "refreshToken is required", env.Error.Details)
	})

	t.Run("profile uses authenticated user", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()
		ts.users.EXPECT().GetProfile(mock.Anything, ts.ownerID).Return(user, nil)

		rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), "Ann")
	})

	t.Run("update profile", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authorize()
		ts.users.EXPECT().UpdateProfile(mock.Anything, ts.ownerID, &usecase.UpdateProfileInput{Name: "Annie"}).Return(user, nil)

		rec := ts.do(authed(jsonRequest(http.MethodPut, "/api/v1/user/profile", `{"name":"Annie"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequestContextCarriesUser(t *testing.T) {
	ts := newTestServer(t)
	ts.authorize()
	ts.cars.EXPECT().ListMyCars(mock.Anything, ts.ownerID).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID) ([]*entity.Car, error) {
			assert.Equal(t, ts.ownerID, deliverycontext.GetUserIDFromContext(ctx))
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
			assert.NotNil(t, deliverycontext.GetLogger(ctx))

			return nil, nil
		})

	rec := ts.do(authed(httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
}
