package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hireflow/models"
	"hireflow/services/outreach"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The outreach endpoints are tested against the real in-memory engine, so
// the error-code to status mapping is exercised end to end.
func newOutreachTestEnv() (*gin.Engine, *outreach.DefaultSessionService) {
	gin.SetMode(gin.TestMode)
	svc := &outreach.DefaultSessionService{
		Pool:   outreach.NewSlotPool(),
		Store:  outreach.NewSessionStore(time.Hour),
		Logger: zap.NewNop(),
	}
	h := NewOutreachHandler(svc, nil, nil, zap.NewNop())

	r := gin.New()
	r.GET("/api/outreach/templates", h.ListTemplates)
	r.GET("/api/outreach/slots", h.PreviewSlots)
	r.GET("/api/outreach/session/:sessionID", h.GetSession)
	r.PUT("/api/outreach/session/:sessionID/template", h.SelectTemplate)
	r.PUT("/api/outreach/session/:sessionID/slot", h.SelectSlot)
	r.PUT("/api/outreach/session/:sessionID/body", h.OverrideBody)
	r.POST("/api/outreach/session/:sessionID/send", h.ConfirmSend)
	r.DELETE("/api/outreach/session/:sessionID", h.CloseSession)
	return r, svc
}

var handlerRef = time.Date(2026, time.January, 7, 10, 0, 0, 0, time.UTC)

func openTestSession(t *testing.T, svc *outreach.DefaultSessionService) *models.OutreachSession {
	t.Helper()
	session, err := svc.OpenSession(models.Candidate{
		ID:         "cand-1",
		JobID:      "job-1",
		Name:       "Amina Okafor",
		Email:      "amina@example.com",
		MatchScore: 87,
	}, "Backend Engineer", handlerRef)
	require.NoError(t, err)
	return session
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListTemplatesEndpoint(t *testing.T) {
	r, _ := newOutreachTestEnv()
	w := doJSON(t, r, http.MethodGet, "/api/outreach/templates", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Templates []models.TemplateInfo `json:"templates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 4)
	assert.Equal(t, "standard-invite", resp.Templates[0].ID)
	assert.True(t, resp.Templates[0].RequiresSlot)
}

func TestPreviewSlotsEndpoint(t *testing.T) {
	r, _ := newOutreachTestEnv()
	w := doJSON(t, r, http.MethodGet, "/api/outreach/slots?from=2026-01-07T10:00:00Z", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Slots []struct {
			Formatted string `json:"formatted"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 40)
	assert.Equal(t, "Monday, January 12, 2026, at 9:00 AM", resp.Slots[0].Formatted)
}

func TestPreviewSlotsRejectsBadTimestamp(t *testing.T) {
	r, _ := newOutreachTestEnv()
	w := doJSON(t, r, http.MethodGet, "/api/outreach/slots?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	r, _ := newOutreachTestEnv()
	w := doJSON(t, r, http.MethodGet, "/api/outreach/session/ghost", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), outreach.CodeSessionNotFound)
}

func TestSelectTemplateEndpoint(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)

	w := doJSON(t, r, http.MethodPut, "/api/outreach/session/"+session.ID+"/template",
		gin.H{"templateId": "offer"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Job Offer: Backend Engineer")
}

func TestSelectTemplateUnknownReturns404(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)

	w := doJSON(t, r, http.MethodPut, "/api/outreach/session/"+session.ID+"/template",
		gin.H{"templateId": "cold-call"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), outreach.CodeUnknownTemplate)
}

func TestSelectSlotEndpoint(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)
	target := session.AvailableSlots[3]

	w := doJSON(t, r, http.MethodPut, "/api/outreach/session/"+session.ID+"/slot",
		gin.H{"startTime": target.StartTime.Format(time.RFC3339)})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), target.Formatted())
}

func TestSelectSlotConflictReturns409(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)

	sunday := time.Date(2026, time.January, 11, 9, 0, 0, 0, time.UTC)
	w := doJSON(t, r, http.MethodPut, "/api/outreach/session/"+session.ID+"/slot",
		gin.H{"startTime": sunday.Format(time.RFC3339)})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), outreach.CodeSlotConflict)
}

func TestOverrideBodyEndpoint(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)

	w := doJSON(t, r, http.MethodPut, "/api/outreach/session/"+session.ID+"/body",
		gin.H{"body": "Short personal note."})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.OutreachSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Short personal note.", resp.Body)
	assert.True(t, resp.BodyOverridden)
}

func TestConfirmSendEndpoint(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)

	w := doJSON(t, r, http.MethodPost, "/api/outreach/session/"+session.ID+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "amina@example.com")

	// Session is gone afterwards.
	w = doJSON(t, r, http.MethodGet, "/api/outreach/session/"+session.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmSendConflictReturns409(t *testing.T) {
	r, svc := newOutreachTestEnv()
	first := openTestSession(t, svc)
	second := openTestSession(t, svc)

	w := doJSON(t, r, http.MethodPost, "/api/outreach/session/"+first.ID+"/send", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Both sessions default-selected the same earliest slot.
	w = doJSON(t, r, http.MethodPost, "/api/outreach/session/"+second.ID+"/send", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), outreach.CodeSlotConflict)
}

func TestCloseSessionEndpoint(t *testing.T) {
	r, svc := newOutreachTestEnv()
	session := openTestSession(t, svc)

	w := doJSON(t, r, http.MethodDelete, "/api/outreach/session/"+session.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Idempotent.
	w = doJSON(t, r, http.MethodDelete, "/api/outreach/session/"+session.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
