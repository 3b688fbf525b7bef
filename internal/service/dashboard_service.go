package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

type userLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type applicationLister interface {
	List(ctx context.Context) ([]models.CourseApplication, error)
}

type newsLister interface {
	ListAll(ctx context.Context) ([]models.News, error)
}

type periodLister interface {
	ListAll(ctx context.Context) ([]models.AdmissionPeriod, error)
}

type messageLister interface {
	List(ctx context.Context) ([]models.Message, error)
}

type teacherLister interface {
	ListAll(ctx context.Context) ([]models.Teacher, error)
}

// Dashboard tabs preselected by the admin views.
const (
	DashboardTabAdmission = "korea-admission"
	DashboardTabTeachers  = "teachers"
)

// DashboardService composes the admin panel payload.
type DashboardService struct {
	users        userLister
	applications applicationLister
	news         newsLister
	periods      periodLister
	messages     messageLister
	teachers     teacherLister
	logger       *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(users userLister, applications applicationLister, news newsLister, periods periodLister, messages messageLister, teachers teacherLister, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		users:        users,
		applications: applications,
		news:         news,
		periods:      periods,
		messages:     messages,
		teachers:     teachers,
		logger:       logger,
	}
}

// Build loads every collection the admin panel shows.
func (s *DashboardService) Build(ctx context.Context, activeTab string) (*models.AdminDashboard, error) {
	dashboard := &models.AdminDashboard{ActiveTab: activeTab}
	var err error

	if dashboard.Users, err = s.users.List(ctx); err != nil {
		return nil, s.fail("users", err)
	}
	if dashboard.Applications, err = s.applications.List(ctx); err != nil {
		return nil, s.fail("applications", err)
	}
	if dashboard.News, err = s.news.ListAll(ctx); err != nil {
		return nil, s.fail("news", err)
	}
	if dashboard.AdmissionPeriods, err = s.periods.ListAll(ctx); err != nil {
		return nil, s.fail("admission periods", err)
	}
	if dashboard.Messages, err = s.messages.List(ctx); err != nil {
		return nil, s.fail("messages", err)
	}
	if dashboard.Teachers, err = s.teachers.ListAll(ctx); err != nil {
		return nil, s.fail("teachers", err)
	}
	return dashboard, nil
}

func (s *DashboardService) fail(section string, err error) error {
	s.logger.Error("failed to load dashboard section", zap.String("section", section), zap.Error(err))
	if appErr := appErrors.FromError(err); appErr.Code != appErrors.ErrInternal.Code {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dashboard")
}
