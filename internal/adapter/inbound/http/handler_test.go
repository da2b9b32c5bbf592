package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	domainerror "github.com/riftbook/rift-social/internal/domain/error"
	"github.com/riftbook/rift-social/internal/domain/model"
	"github.com/riftbook/rift-social/internal/port/inbound/command"
	"github.com/riftbook/rift-social/internal/port/inbound/query"
)

// Stub handlers with settable behavior per test.

type stubGetProfile struct {
	fn func(query.GetProfile) (query.GetProfileResult, error)
}

func (s stubGetProfile) Handle(_ context.Context, q query.GetProfile) (query.GetProfileResult, error) {
	return s.fn(q)
}

type stubRefreshProfile struct {
	fn func(command.RefreshProfile) (command.RefreshProfileResult, error)
}

func (s stubRefreshProfile) Handle(_ context.Context, c command.RefreshProfile) (command.RefreshProfileResult, error) {
	return s.fn(c)
}

type stubSendFriendRequest struct {
	fn func(command.SendFriendRequest) (command.SendFriendRequestResult, error)
}

func (s stubSendFriendRequest) Handle(_ context.Context, c command.SendFriendRequest) (command.SendFriendRequestResult, error) {
	return s.fn(c)
}

type stubIsOnline struct {
	fn func(query.IsOnline) (query.IsOnlineResult, error)
}

func (s stubIsOnline) Handle(_ context.Context, q query.IsOnline) (query.IsOnlineResult, error) {
	return s.fn(q)
}

type stubGetMatch struct {
	fn func(query.GetMatch) (query.GetMatchResult, error)
}

func (s stubGetMatch) Handle(_ context.Context, q query.GetMatch) (query.GetMatchResult, error) {
	return s.fn(q)
}

const (
	testSigningKey = "test-signing-key"
	testIssuer     = "riftbook"
	testAudience   = "riftbook-social"
)

func testAuthenticator() *Authenticator {
	return NewAuthenticator(testSigningKey, testIssuer, testAudience)
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// newTestServer mounts the given handler config behind the full
// middleware chain, the way NewServer wires production routes.
func newTestServer(t *testing.T, cfg HandlerConfig) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	handler := NewHandler(cfg, logger)

	api := http.NewServeMux()
	handler.Register(api)
	root := Chain(api,
		RecoveryMiddleware(logger),
		LoggingMiddleware(logger),
		AuthMiddleware(testAuthenticator()),
	)

	server := httptest.NewServer(root)
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, server *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}
	req, err := http.NewRequest(method, server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestAuthRequired(t *testing.T) {
	server := newTestServer(t, HandlerConfig{
		GetProfileHandler: stubGetProfile{fn: func(query.GetProfile) (query.GetProfileResult, error) {
			return query.GetProfileResult{Profile: &model.Profile{}}, nil
		}},
	})

	t.Run("missing token", func(t *testing.T) {
		resp := doRequest(t, server, http.MethodGet, "/v1/profiles/euw/faker/kr1", "", "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		resp := doRequest(t, server, http.MethodGet, "/v1/profiles/euw/faker/kr1", "not-a-jwt", "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})

	t.Run("valid token passes", func(t *testing.T) {
		resp := doRequest(t, server, http.MethodGet, "/v1/profiles/euw/faker/kr1", signToken(t, "alice"), "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"throttled refresh", domainerror.ErrRefreshThrottled, http.StatusTooManyRequests},
		{"upstream unavailable", domainerror.ErrUpstreamUnavailable, http.StatusServiceUnavailable},
		{"unknown player", domainerror.ErrUpstreamNotFound, http.StatusNotFound},
		{"restricted", domainerror.ErrRestricted, http.StatusForbidden},
		{"missing region", domainerror.ErrRegionRequired, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t, HandlerConfig{
				RefreshProfileHandler: stubRefreshProfile{fn: func(command.RefreshProfile) (command.RefreshProfileResult, error) {
					return command.RefreshProfileResult{}, tt.err
				}},
			})

			resp := doRequest(t, server, http.MethodPost, "/v1/profiles/euw/faker/kr1/refresh", signToken(t, "alice"), "")
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}

			var body errorBody
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error.Code == "" {
				t.Error("error body missing code")
			}
		})
	}
}

func TestSendFriendRequestEndpoint(t *testing.T) {
	t.Run("uses the principal as requester", func(t *testing.T) {
		var captured command.SendFriendRequest
		server := newTestServer(t, HandlerConfig{
			SendFriendRequestHandler: stubSendFriendRequest{fn: func(c command.SendFriendRequest) (command.SendFriendRequestResult, error) {
				captured = c
				request, _ := model.NewFriendRequest(c.RequesterID, c.RecipientID)
				return command.SendFriendRequestResult{Request: request}, nil
			}},
		})

		resp := doRequest(t, server, http.MethodPost, "/v1/friends/requests", signToken(t, "alice"), `{"recipient":"bob"}`)
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("status = %d, want 201", resp.StatusCode)
		}
		if captured.RequesterID != "alice" || captured.RecipientID != "bob" {
			t.Errorf("command = %+v, want alice -> bob", captured)
		}

		var body friendRequestResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Status != "pending" {
			t.Errorf("status field = %q, want pending", body.Status)
		}
	})

	t.Run("duplicate pending maps to conflict", func(t *testing.T) {
		server := newTestServer(t, HandlerConfig{
			SendFriendRequestHandler: stubSendFriendRequest{fn: func(command.SendFriendRequest) (command.SendFriendRequestResult, error) {
				return command.SendFriendRequestResult{}, domainerror.ErrDuplicatePending
			}},
		})

		resp := doRequest(t, server, http.MethodPost, "/v1/friends/requests", signToken(t, "alice"), `{"recipient":"bob"}`)
		if resp.StatusCode != http.StatusConflict {
			t.Errorf("status = %d, want 409", resp.StatusCode)
		}
	})
}

func TestPresenceEndpoint(t *testing.T) {
	server := newTestServer(t, HandlerConfig{
		IsOnlineHandler: stubIsOnline{fn: func(q query.IsOnline) (query.IsOnlineResult, error) {
			return query.IsOnlineResult{Online: q.RequesterID == "alice" && q.TargetID == "bob"}, nil
		}},
	})

	resp := doRequest(t, server, http.MethodGet, "/v1/presence/bob", signToken(t, "alice"), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Online {
		t.Error("online = false, want true")
	}
}

func TestMatchEndpointRestricted(t *testing.T) {
	server := newTestServer(t, HandlerConfig{
		GetMatchHandler: stubGetMatch{fn: func(query.GetMatch) (query.GetMatchResult, error) {
			return query.GetMatchResult{}, domainerror.ErrRestricted
		}},
	})

	resp := doRequest(t, server, http.MethodGet, "/v1/match/euw/EUW1_1", signToken(t, "alice"), "")
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}
}

func TestPaginationValidation(t *testing.T) {
	server := newTestServer(t, HandlerConfig{})

	resp := doRequest(t, server, http.MethodGet, "/v1/matches/euw/puuid-1?page=abc", signToken(t, "alice"), "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
