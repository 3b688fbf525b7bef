package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/models"
)

func TestDashboardBuild(t *testing.T) {
	validate := validator.New()
	users := &fakeUserRepo{users: []models.User{{ID: 1, Role: models.RoleAdmin}}}
	apps := NewApplicationService(&fakeApplicationRepo{apps: []models.CourseApplication{{ID: 1}}}, validate, zap.NewNop(), nil)
	news := NewNewsService(&fakeNewsRepo{items: []models.News{{ID: 1}, {ID: 2}}}, validate, zap.NewNop())
	periods := NewAdmissionPeriodService(&fakePeriodRepo{periods: []models.AdmissionPeriod{{ID: 1}}}, validate, zap.NewNop())
	messages := NewMessageService(&fakeMessageRepo{msgs: []models.Message{{ID: 1}}}, validate, zap.NewNop())
	teachers, _ := newTeacherService(&fakeTeacherRepo{teachers: []models.Teacher{{ID: 1}}}, nil)

	svc := NewDashboardService(users, apps, news, periods, messages, teachers, zap.NewNop())
	dashboard, err := svc.Build(context.Background(), DashboardTabTeachers)
	require.NoError(t, err)
	assert.Equal(t, DashboardTabTeachers, dashboard.ActiveTab)
	assert.Len(t, dashboard.Users, 1)
	assert.Len(t, dashboard.Applications, 1)
	assert.Len(t, dashboard.News, 2)
	assert.Len(t, dashboard.AdmissionPeriods, 1)
	assert.Len(t, dashboard.Messages, 1)
	assert.Len(t, dashboard.Teachers, 1)
}
