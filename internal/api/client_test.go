package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", srv.Client(), zap.NewNop())
}

var testSession = &model.Session{TelegramID: 42, Token: "tok-1", StaffName: "Dr. Priya"}

func TestListOutpassesSendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/staff/outpasses", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = io.WriteString(w, `[{"_id":"1","name":"John Smith","staffApproval":"pending","outpassType":"Emergency"}]`)
	})

	list, err := client.ListOutpasses(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "John Smith", list[0].Name)
	assert.True(t, list[0].IsEmergency())
}

func TestSubmitStaffDecisionBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/staff/outpasses/op%2F7/approval", r.URL.EscapedPath())

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"decision": "approved", "remarks": "ok"}, body)
		w.WriteHeader(http.StatusOK)
	})

	err := client.SubmitStaffDecision(context.Background(), testSession, "op/7", model.ApprovalApproved, "ok")
	assert.NoError(t, err)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnauthorized) },
		},
		{
			name:   "forbidden",
			status: http.StatusForbidden,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnauthorized) },
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNotFound) },
		},
		{
			name:   "duplicate user",
			status: http.StatusConflict,
			body:   `{"message":"User already exists"}`,
			check: func(t *testing.T, err error) {
				ve, ok := IsValidation(err)
				require.True(t, ok)
				assert.Equal(t, "User already exists", ve.Message)
			},
		},
		{
			name:   "plain text validation",
			status: http.StatusBadRequest,
			body:   "All users already exist",
			check: func(t *testing.T, err error) {
				ve, ok := IsValidation(err)
				require.True(t, ok)
				assert.Equal(t, "All users already exist", ve.Message)
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":"boom"}`,
			check: func(t *testing.T, err error) {
				var se *StatusError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, "boom", se.Message)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := client.GetProfile(context.Background(), testSession)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, nil, zap.NewNop())
	_, err := client.ListStudents(context.Background(), testSession)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := client.ListOutpasses(context.Background(), &model.Session{TelegramID: 1})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"token":"jwt","staff":{"name":"Dr. Priya","email":"p@x.edu"}}`)
	})

	res, err := client.Login(context.Background(), "p@x.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.Token)
	assert.Equal(t, "Dr. Priya", res.Staff.Name)

	_, err = client.Login(context.Background(), "p@x.edu", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUploadRosterMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		data, _ := io.ReadAll(file)
		assert.Equal(t, "roster.xlsx", header.Filename)
		assert.Equal(t, "sheet-bytes", string(data))
		_, _ = io.WriteString(w, `{"message":"done","inserted":3,"skipped":1}`)
	})

	res, err := client.UploadRoster(context.Background(), testSession, "roster.xlsx", strings.NewReader("sheet-bytes"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Inserted)
	assert.Equal(t, 1, res.Skipped)
}

func TestGetOutpassWithoutRecordIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"roommates":[]}`)
	})

	_, err := client.GetOutpass(context.Background(), testSession, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}
