package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passport/config"
	"passport/internal/delivery/http/validator"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCredentialUsecase returns canned responses per operation.
type stubCredentialUsecase struct {
	signupErr  error
	signinErr  error
	profile    *usecase.ProfileOutput
	profileErr error
}

func (s *stubCredentialUsecase) Signup(context.Context, *usecase.SignupInput) (*usecase.SessionOutput, error) {
	if s.signupErr != nil {
		return nil, s.signupErr
	}

	return &usecase.SessionOutput{AccessToken: "signup-token", TokenType: "Bearer", ExpiresIn: 600}, nil
}

func (s *stubCredentialUsecase) Signin(context.Context, *usecase.SigninInput) (*usecase.SessionOutput, error) {
	if s.signinErr != nil {
		return nil, s.signinErr
	}

	return &usecase.SessionOutput{AccessToken: "signin-token", TokenType: "Bearer", ExpiresIn: 600}, nil
}

func (s *stubCredentialUsecase) GetCurrentUser(context.Context, uuid.UUID) (*usecase.ProfileOutput, error) {
	if s.profileErr != nil {
		return nil, s.profileErr
	}

	return s.profile, nil
}

func (s *stubCredentialUsecase) ChangePassword(context.Context, *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	return &usecase.ChangePasswordOutput{Message: "password updated"}, nil
}

func newHandlerTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New(&config.Config{})
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{}}

	body := `{"phone":"+14155550123","firstName":"Ada","lastName":"Lovelace","password":"StrongPass123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signup-token")
	assert.Contains(t, rec.Body.String(), `"token_type":"Bearer"`)
}

func TestAuthHandler_Signup_InvalidPhone(t *testing.T) {
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{}}

	body := `{"phone":"not-a-phone","firstName":"Ada","lastName":"Lovelace","password":"StrongPass123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Signup_DuplicatePhone(t *testing.T) {
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{
		signupErr: domainerrors.ErrPhoneAlreadyRegistered,
	}}

	body := `{"phone":"+14155550123","firstName":"Ada","lastName":"Lovelace","password":"StrongPass123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/signup", body)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "PHONE_ALREADY_REGISTERED")
}

func TestAuthHandler_Signin_InvalidCredentials(t *testing.T) {
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{
		signinErr: errors.Wrap(domainerrors.ErrInvalidCredentials, "signin failed"),
	}}

	body := `{"phone":"+14155550123","password":"WrongPass123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/login", body)

	require.NoError(t, h.Signin(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_GetCurrentUser_WithoutAuthContext(t *testing.T) {
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{}}

	c, rec := newHandlerTestContext(t, http.MethodGet, "/auth/me", "")

	require.NoError(t, h.GetCurrentUser(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_GetCurrentUser_Success(t *testing.T) {
	userID := uuid.New()
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{
		profile: &usecase.ProfileOutput{User: &entity.Profile{
			ID:        userID,
			Phone:     "+14155550123",
			FirstName: "Ada",
			LastName:  "Lovelace",
		}},
	}}

	c, rec := newHandlerTestContext(t, http.MethodGet, "/auth/me", "")
	c.Set("userID", userID)

	require.NoError(t, h.GetCurrentUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "+14155550123")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	h := &AuthHandler{credentialUC: &stubCredentialUsecase{}}

	body := `{"oldPassword":"StrongPass123!","newPassword":"EvenStronger456!"}`
	c, rec := newHandlerTestContext(t, http.MethodPatch, "/auth/change-password", body)
	c.Set("userID", uuid.New())

	require.NoError(t, h.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "password updated")
}
