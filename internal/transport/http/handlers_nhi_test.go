package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nhicheck/internal/jwtauth"
	"nhicheck/internal/validate"
	"nhicheck/pkg/testutil"
)

func newTestRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.Logger == nil {
		opts.Logger = logger
	}
	// nil metrics keeps the default Prometheus registry clean in tests.
	h := NewHandler(validate.New(opts.Logger, nil), opts.Logger)
	return NewRouter(h, opts)
}

func TestHandleValidate(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	t.Run("valid old-format number - 200", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate", map[string]string{"nhi": "ZAC5361"})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[validate.Result](t, rr)
		assert.Equal(t, validate.Result{NHI: "ZAC5361", Valid: true, Format: "old"}, *got)
	})

	t.Run("lowercase input is normalized", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate", map[string]string{"nhi": "zbn77vl"})
		rr := testutil.DoRequest(router, req)

		got := testutil.UnmarshalResponse[validate.Result](t, rr)
		assert.Equal(t, "ZBN77VL", got.NHI)
		assert.True(t, got.Test, "Z prefix means reserved for testing")
	})

	t.Run("invalid number still returns 200 with valid false", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate", map[string]string{"nhi": "ZZZ0044"})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[validate.Result](t, rr)
		assert.False(t, got.Valid)
		assert.Empty(t, got.NHI)
	})

	t.Run("malformed body - 400", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/nhi/validate", "{bad-json")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "bad_request")
	})

	t.Run("non-JSON content type - 415", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/nhi/validate", `{"nhi":"ZAC5361"}`)
		req.Header.Set("Content-Type", "text/plain")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
	})
}

func TestHandleValidateBatch(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	t.Run("mixed batch keeps input order", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate/batch",
			map[string][]string{"nhis": {"ZAC5361", "ZZZ0044", "jbx3656"}})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[batchResponse](t, rr)
		assert.Len(t, got.Results, 3)
		assert.True(t, got.Results[0].Valid)
		assert.False(t, got.Results[1].Valid)
		assert.Equal(t, "JBX3656", got.Results[2].NHI)
	})

	t.Run("empty batch - 400", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate/batch", map[string][]string{"nhis": {}})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})

	t.Run("oversized batch - 400", func(t *testing.T) {
		big := make([]string, maxBatchSize+1)
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate/batch", map[string][]string{"nhis": big})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestHandleGet(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	t.Run("valid path parameter", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nhi/ZBN77VL"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[validate.Result](t, rr)
		assert.Equal(t, "ZBN77VL", got.NHI)
		assert.Equal(t, "new", got.Format)
	})

	t.Run("invalid path parameter", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nhi/AAANNAC"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[validate.Result](t, rr)
		assert.False(t, got.Valid)
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, "ok", strings.TrimSpace(rr.Body.String()))
}

func TestAuthGuard(t *testing.T) {
	jwtSvc := jwtauth.NewService("test-key", "nhicheck", "nhicheck-api")
	router := newTestRouter(t, RouterOptions{JWTValidator: jwtSvc})

	t.Run("missing token - 401", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate", map[string]string{"nhi": "ZAC5361"})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("valid token - 200", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken("suite", time.Minute)
		assert.NoError(t, err)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/nhi/validate", map[string]string{"nhi": "ZAC5361"})
		req.Header.Set("Authorization", "Bearer "+token)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusOK)
	})

	t.Run("health stays open", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))
		testutil.AssertStatus(t, rr, http.StatusOK)
	})
}
