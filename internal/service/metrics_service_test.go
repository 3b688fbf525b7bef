package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceExposesDomainCounters(t *testing.T) {
	m := NewMetricsService()
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, 10*time.Millisecond)
	m.RecordApplication("korean")
	m.RecordStatusChange("approved")
	m.RecordLogin(false)
	m.RecordUpload("rejected")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `course_applications_submitted_total{course_type="korean"} 1`)
	assert.Contains(t, body, `course_application_status_changes_total{status="approved"} 1`)
	assert.Contains(t, body, `auth_login_attempts_total{outcome="failure"} 1`)
	assert.Contains(t, body, `teacher_photo_uploads_total{outcome="rejected"} 1`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/",status="200"} 1`)
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.RecordApplication("korean")
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
