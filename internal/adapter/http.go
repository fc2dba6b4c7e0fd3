package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-xref/internal/config"
	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/internal/utils"
	"github.com/MKhiriev/go-xref/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	resp, err := h.execute(h.request(ctx, "").SetBody(creds), http.MethodPost, "/auth/login/", "login")
	if err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if err = decode(resp, &lr); err != nil {
		return "", err
	}
	if strings.TrimSpace(lr.Tokens.Access) == "" {
		return "", fmt.Errorf("%w: login response has no access token", ErrDecode)
	}

	return lr.Tokens.Access, nil
}

// Signup implements [ServerAdapter].
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	_, err := h.execute(h.request(ctx, "").SetBody(req), http.MethodPost, "/auth/register/", "signup")
	return err
}

// Profile implements [ServerAdapter].
func (h *httpServerAdapter) Profile(ctx context.Context, token string) (models.UserProfile, error) {
	resp, err := h.execute(h.request(ctx, token), http.MethodPost, "/auth/profile/", "profile")
	if err != nil {
		return models.UserProfile{}, err
	}

	var pr models.ProfileResponse
	if err = decode(resp, &pr); err != nil {
		return models.UserProfile{}, err
	}
	if pr.User == nil {
		return models.UserProfile{}, fmt.Errorf("%w: profile response has no user", ErrDecode)
	}

	return *pr.User, nil
}

// Search implements [ServerAdapter].
func (h *httpServerAdapter) Search(ctx context.Context, token string, req models.SearchRequest) (models.SearchResponse, error) {
	resp, err := h.execute(h.request(ctx, token).SetBody(req), http.MethodPost, "/catalog/search/", "search")
	if err != nil {
		return models.SearchResponse{}, err
	}

	var sr models.SearchResponse
	if err = decode(resp, &sr); err != nil {
		return models.SearchResponse{}, err
	}
	if sr.Success != nil && !*sr.Success {
		msg := firstNonEmpty(sr.Error, sr.Message, "Search failed. Please try again.")
		return models.SearchResponse{}, rejected(resp.StatusCode(), msg)
	}

	return sr, nil
}

// Manufacturers implements [ServerAdapter]. Both a bare JSON array and a
// {"data": [...]} envelope are accepted.
func (h *httpServerAdapter) Manufacturers(ctx context.Context, token string) ([]string, error) {
	resp, err := h.execute(h.request(ctx, token), http.MethodGet, "/catalog/manufacturers/", "manufacturers")
	if err != nil {
		return nil, err
	}

	var list []string
	if err = json.Unmarshal(resp.Body(), &list); err == nil {
		return list, nil
	}

	var mr models.ManufacturersResponse
	if err = decode(resp, &mr); err != nil {
		return nil, err
	}
	return mr.Data, nil
}

// Plans implements [ServerAdapter].
func (h *httpServerAdapter) Plans(ctx context.Context) ([]models.Plan, error) {
	resp, err := h.execute(h.request(ctx, ""), http.MethodPost, "/auth/plan/", "plans")
	if err != nil {
		return nil, err
	}

	var pr models.PlansResponse
	if err = decode(resp, &pr); err != nil {
		return nil, err
	}
	return pr.Data, nil
}

// ForgotPassword implements [ServerAdapter].
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := h.execute(h.request(ctx, "").SetBody(body), http.MethodPost, "/auth/forgot-password/", "forgot password")
	return err
}

// ResetPassword implements [ServerAdapter].
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	path := "/auth/reset-password/" + url.PathEscape(req.UID) + "/" + url.PathEscape(req.Token) + "/"
	_, err := h.execute(h.request(ctx, "").SetBody(req), http.MethodPost, path, "reset password")
	return err
}

// VerifyEmail implements [ServerAdapter].
func (h *httpServerAdapter) VerifyEmail(ctx context.Context, uid, token string) error {
	path := "/auth/verify-email/" + url.PathEscape(uid) + "/" + url.PathEscape(token) + "/"
	_, err := h.execute(h.request(ctx, ""), http.MethodPost, path, "verify email")
	return err
}

// ContactUs implements [ServerAdapter].
func (h *httpServerAdapter) ContactUs(ctx context.Context, req models.ContactRequest) error {
	_, err := h.execute(h.request(ctx, "").SetBody(req), http.MethodPost, "/auth/contact_us/", "contact us")
	return err
}

// DeleteAccount implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAccount(ctx context.Context, token, password string) error {
	body := map[string]string{"password": password}
	_, err := h.execute(h.request(ctx, token).SetBody(body), http.MethodPost, "/auth/delete/", "delete account")
	return err
}

// AdminDashboard implements [ServerAdapter].
func (h *httpServerAdapter) AdminDashboard(ctx context.Context, token string) (models.Dashboard, error) {
	resp, err := h.execute(h.request(ctx, token), http.MethodPost, "/admin/dashboard/", "admin dashboard")
	if err != nil {
		return models.Dashboard{}, err
	}

	var dr models.DashboardResponse
	if err = decode(resp, &dr); err != nil {
		return models.Dashboard{}, err
	}
	return dr.Data, nil
}

// AdminParts implements [ServerAdapter].
func (h *httpServerAdapter) AdminParts(ctx context.Context, token string, page int, search string) (models.PartsPage, error) {
	req := h.request(ctx, token).SetQueryParam("page", strconv.Itoa(page))
	if search = strings.TrimSpace(search); search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := h.execute(req, http.MethodPost, "/admin/parts/", "admin parts")
	if err != nil {
		return models.PartsPage{}, err
	}

	var pr models.PartsResponse
	if err = decode(resp, &pr); err != nil {
		return models.PartsPage{}, err
	}
	if pr.Data == nil || pr.Data.Results == nil {
		return models.PartsPage{}, fmt.Errorf("%w: parts response has no results", ErrDecode)
	}

	return *pr.Data, nil
}

// EditPart implements [ServerAdapter].
func (h *httpServerAdapter) EditPart(ctx context.Context, token, id string, changed map[string]string) error {
	path := "/admin/parts/" + url.PathEscape(id) + "/edit/"
	_, err := h.execute(h.request(ctx, token).SetBody(changed), http.MethodPut, path, "edit part")
	return err
}

// DeletePart implements [ServerAdapter].
func (h *httpServerAdapter) DeletePart(ctx context.Context, token, id string) error {
	path := "/admin/parts/" + url.PathEscape(id) + "/delete/"
	_, err := h.execute(h.request(ctx, token), http.MethodDelete, path, "delete part")
	return err
}

// UploadCatalog implements [ServerAdapter].
func (h *httpServerAdapter) UploadCatalog(ctx context.Context, token, fileName string, r io.Reader) (string, error) {
	req := h.request(ctx, token).SetFileReader("file", fileName, r)

	resp, err := h.execute(req, http.MethodPost, "/admin/upload-data/", "upload catalog")
	if err != nil {
		return "", err
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(resp.Body(), &body)

	return firstNonEmpty(body.Message, "Upload successful"), nil
}

// request starts a JSON request tagged with a fresh request id. The bearer
// header is only attached when token is non-empty.
func (h *httpServerAdapter) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, newRequestID())

	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// execute sends req and maps both transport and status failures. The
// response is returned only when the call succeeded.
func (h *httpServerAdapter) execute(req *resty.Request, method, path, op string) (*resty.Response, error) {
	log := h.logger.WithRequestID(req.Header.Get(requestIDHeader))
	start := time.Now()

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).
			Str("func", "httpServerAdapter.execute").
			Str("method", method).
			Str("path", path).
			Dur("duration", time.Since(start)).
			Msg("request failed")
		return nil, mapTransportError(op, err)
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func newRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
