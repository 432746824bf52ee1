package asc

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/viant/asc-mcp/asc/auth"
	"github.com/viant/asc-mcp/asc/client"
	"github.com/viant/asc-mcp/asc/config"
	"github.com/viant/asc-mcp/asc/tool"
)

// spyTransport records every outgoing request and replays canned responses.
type spyTransport struct {
	requests []*http.Request
	bodies   []string
	status   int
	body     string
}

func (s *spyTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, request)
	sent := ""
	if request.Body != nil {
		data, _ := io.ReadAll(request.Body)
		sent = string(data)
	}
	s.bodies = append(s.bodies, sent)
	status := s.status
	if status == 0 {
		status = 200
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(s.body)),
		Header:     http.Header{},
	}, nil
}

type staticToken string

func (s staticToken) Issue(context.Context) (string, error) { return string(s), nil }

func newTestService(t *testing.T, spy *spyTransport, opts ...Option) *Service {
	t.Helper()
	cfg := &config.Config{
		KeyID:      "KEY1",
		IssuerID:   "issuer-1",
		PrivateKey: filepath.Join(t.TempDir(), "unused.p8"),
		BaseURL:    "https://api.example.com/v1",
	}
	opts = append([]Option{
		WithConfig(cfg),
		WithTransport(spy),
		WithTokenSource(staticToken("tok123")),
	}, opts...)
	svc, err := New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	spy := &spyTransport{}
	svc := newTestService(t, spy)

	_, err := svc.ExecuteTool(context.Background(), "no_such_tool", nil)
	if assert.Error(t, err) {
		_, ok := err.(*UnknownToolError)
		assert.True(t, ok, "expected *UnknownToolError, got %T", err)
	}
	assert.Empty(t, spy.requests)
}

func TestExecuteTool_MissingRequiredMakesNoNetworkCall(t *testing.T) {
	spy := &spyTransport{}
	svc := newTestService(t, spy)

	var testCases = []struct {
		toolName string
		args     map[string]interface{}
	}{
		{"get_app_info", nil},
		{"list_customer_reviews", map[string]interface{}{"limit": float64(10)}},
		{"list_customer_reviews_for_version", nil},
		{"create_customer_review_response", map[string]interface{}{"reviewId": "r1"}},
		{"delete_customer_review_response", nil},
		{"get_customer_review_response", map[string]interface{}{}},
	}

	for _, tc := range testCases {
		_, err := svc.ExecuteTool(context.Background(), tc.toolName, tc.args)
		if assert.Error(t, err, tc.toolName) {
			_, ok := err.(*tool.ArgumentError)
			assert.True(t, ok, "%v: expected *tool.ArgumentError, got %T", tc.toolName, err)
		}
	}
	assert.Empty(t, spy.requests, "no request may leave the process on validation failure")
}

func TestExecuteTool_GetAppInfo(t *testing.T) {
	spy := &spyTransport{body: `{"data":{"id":"123","type":"apps"}}`}
	svc := newTestService(t, spy)

	out, err := svc.ExecuteTool(context.Background(), "get_app_info", map[string]interface{}{"appId": "123"})
	assert.NoError(t, err)
	// The upstream body is passed through unmodified.
	assert.EqualValues(t, `{"data":{"id":"123","type":"apps"}}`, out)

	if assert.Len(t, spy.requests, 1) {
		request := spy.requests[0]
		assert.EqualValues(t, "GET", request.Method)
		assert.EqualValues(t, "/v1/apps/123", request.URL.Path)
		assert.Empty(t, request.URL.Query().Get("include"))
		assert.EqualValues(t, "Bearer tok123", request.Header.Get("Authorization"))
	}
}

func TestExecuteTool_ListAppsDefaultLimit(t *testing.T) {
	spy := &spyTransport{body: `{"data":[]}`}
	svc := newTestService(t, spy)

	_, err := svc.ExecuteTool(context.Background(), "list_apps", nil)
	assert.NoError(t, err)
	if assert.Len(t, spy.requests, 1) {
		assert.EqualValues(t, "100", spy.requests[0].URL.Query().Get("limit"))
	}
}

func TestExecuteTool_ListReviewsQueryShape(t *testing.T) {
	spy := &spyTransport{body: `{"data":[]}`}
	svc := newTestService(t, spy)

	_, err := svc.ExecuteTool(context.Background(), "list_customer_reviews", map[string]interface{}{
		"appId":                   "123",
		"filterTerritory":         "USA",
		"filterRating":            "5",
		"existsPublishedResponse": true,
		"sort":                    []interface{}{"-createdDate", "rating"},
		"limit":                   float64(900),
		"include":                 []interface{}{"response"},
	})
	assert.NoError(t, err)
	if assert.Len(t, spy.requests, 1) {
		query := spy.requests[0].URL.Query()
		assert.EqualValues(t, "USA", query.Get("filter[territory]"))
		assert.EqualValues(t, "5", query.Get("filter[rating]"))
		assert.EqualValues(t, "true", query.Get("exists[publishedResponse]"))
		assert.EqualValues(t, "-createdDate,rating", query.Get("sort"))
		assert.EqualValues(t, "200", query.Get("limit"))
		assert.EqualValues(t, "response", query.Get("include"))
	}
}

func TestExecuteTool_CreateReviewResponse(t *testing.T) {
	spy := &spyTransport{status: 201, body: `{"data":{"id":"resp1"}}`}
	svc := newTestService(t, spy)

	_, err := svc.ExecuteTool(context.Background(), "create_customer_review_response", map[string]interface{}{
		"reviewId":     "r1",
		"responseBody": "Thanks!",
	})
	assert.NoError(t, err)
	if assert.Len(t, spy.requests, 1) {
		request := spy.requests[0]
		assert.EqualValues(t, "POST", request.Method)
		assert.EqualValues(t, "/v1/customerReviewResponses", request.URL.Path)
		expected := `{"data":{"type":"customerReviewResponses","attributes":{"responseBody":"Thanks!"},"relationships":{"review":{"data":{"id":"r1","type":"customerReviews"}}}}}`
		assert.JSONEq(t, expected, spy.bodies[0])
	}
}

func TestExecuteTool_DeleteReviewResponseConfirmation(t *testing.T) {
	spy := &spyTransport{status: 204}
	svc := newTestService(t, spy)

	out, err := svc.ExecuteTool(context.Background(), "delete_customer_review_response", map[string]interface{}{
		"responseId": "resp1",
	})
	assert.NoError(t, err)
	// The 204 body is empty; the tool answers with the confirmation text.
	assert.Contains(t, out, "resp1")
	assert.EqualValues(t, "Successfully deleted review response resp1", out)
	if assert.Len(t, spy.requests, 1) {
		assert.EqualValues(t, "DELETE", spy.requests[0].Method)
		assert.EqualValues(t, "/v1/customerReviewResponses/resp1", spy.requests[0].URL.Path)
	}
}

func TestExecuteTool_UpstreamErrorDetail(t *testing.T) {
	spy := &spyTransport{status: 404, body: `{"errors":[{"detail":"Review not found"}]}`}
	svc := newTestService(t, spy)

	_, err := svc.ExecuteTool(context.Background(), "get_customer_review_response", map[string]interface{}{
		"reviewId": "r1",
	})
	if assert.Error(t, err) {
		upstream, ok := err.(*client.UpstreamError)
		if assert.True(t, ok, "expected *client.UpstreamError, got %T", err) {
			assert.EqualValues(t, "Review not found", upstream.Detail)
		}
	}
}

func TestExecuteTool_CredentialFailureSurfaces(t *testing.T) {
	spy := &spyTransport{}
	cfg := &config.Config{
		KeyID:      "KEY1",
		IssuerID:   "issuer-1",
		PrivateKey: filepath.Join(t.TempDir(), "missing.p8"),
	}
	svc, err := New(context.Background(), WithConfig(cfg), WithTransport(spy))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	_, err = svc.ExecuteTool(context.Background(), "list_apps", nil)
	if assert.Error(t, err) {
		_, ok := err.(*auth.CredentialError)
		assert.True(t, ok, "expected *auth.CredentialError, got %T", err)
	}
	assert.Empty(t, spy.requests)
}

func TestExecuteTool_RealIssuerAttachesSignedToken(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	assert.NoError(t, err)
	location := filepath.Join(t.TempDir(), "AuthKey_KEY1.p8")
	assert.NoError(t, os.WriteFile(location, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), 0o600))

	spy := &spyTransport{body: `{"data":[]}`}
	cfg := &config.Config{KeyID: "KEY1", IssuerID: "issuer-1", PrivateKey: location, BaseURL: "https://api.example.com/v1"}
	svc, err := New(context.Background(), WithConfig(cfg), WithTransport(spy))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	_, err = svc.ExecuteTool(context.Background(), "list_apps", nil)
	assert.NoError(t, err)
	if assert.Len(t, spy.requests, 1) {
		header := spy.requests[0].Header.Get("Authorization")
		if assert.True(t, strings.HasPrefix(header, "Bearer "), "header %q", header) {
			signed := strings.TrimPrefix(header, "Bearer ")
			var claims jwt.RegisteredClaims
			_, err := jwt.NewParser(jwt.WithAudience(auth.Audience)).ParseWithClaims(signed, &claims, func(*jwt.Token) (interface{}, error) {
				return &key.PublicKey, nil
			})
			assert.NoError(t, err)
			assert.EqualValues(t, "issuer-1", claims.Issuer)
		}
	}
}

func TestServiceTools(t *testing.T) {
	svc := newTestService(t, &spyTransport{})

	tools := svc.Tools()
	assert.EqualValues(t, len(svc.ToolNames()), len(tools))

	// Verify that each tool can be resolved individually using LookupTool.
	for _, entry := range tools {
		resolved, err := svc.LookupTool(entry.Metadata.Name)
		if assert.NoError(t, err, "LookupTool(%q) returned error", entry.Metadata.Name) {
			assert.EqualValues(t, entry.Metadata.Name, resolved.Metadata.Name)
		}
	}

	_, err := svc.LookupTool("no_such_tool")
	assert.Error(t, err)
}

func TestToolMetadata(t *testing.T) {
	svc := newTestService(t, &spyTransport{})

	description, schema, ok := svc.ToolMetadata("list_apps")
	assert.True(t, ok)
	assert.NotEmpty(t, description)
	assert.NotNil(t, schema)

	_, _, ok = svc.ToolMetadata("no_such_tool")
	assert.False(t, ok)
}
