package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
)

func newTeacherService(repo *fakeTeacherRepo, metrics *recordingMetrics) (*TeacherService, *memoryStorage) {
	store := &memoryStorage{}
	uploads := newUploadService(store)
	var recorder uploadMetrics
	if metrics != nil {
		recorder = metrics
	}
	return NewTeacherService(repo, uploads, validator.New(), zap.NewNop(), recorder), store
}

func photo(name string) *dto.PhotoUpload {
	return &dto.PhotoUpload{Filename: name, Content: strings.NewReader("img")}
}

func TestCreateTeacherWithPhoto(t *testing.T) {
	repo := &fakeTeacherRepo{}
	metrics := &recordingMetrics{}
	svc, store := newTeacherService(repo, metrics)

	teacher, err := svc.Create(context.Background(), dto.TeacherRequest{
		Name: "Kim", Role: "Founder", Tags: "TOPIK, Grammar", IsFounder: true, Order: 1, Photo: photo("photo.PNG"),
	})
	require.NoError(t, err)
	require.NotNil(t, teacher.Photo)
	assert.Equal(t, "uploads/teachers/1700000000_photo.png", *teacher.Photo)
	assert.True(t, teacher.IsActive)
	assert.Equal(t, []string{"TOPIK", "Grammar"}, teacher.Tags())
	assert.Len(t, store.files, 1)
	assert.Equal(t, []string{"stored"}, metrics.uploads)
}

func TestCreateTeacherRejectsBadUpload(t *testing.T) {
	repo := &fakeTeacherRepo{}
	svc, store := newTeacherService(repo, nil)

	_, err := svc.Create(context.Background(), dto.TeacherRequest{Name: "Kim", Role: "Teacher", Photo: photo("x.exe")})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidUpload))
	assert.Empty(t, repo.teachers)
	assert.Empty(t, store.files)
}

func TestUpdateTeacherKeepsPhotoOnRejectedUpload(t *testing.T) {
	existing := "uploads/teachers/1_old.png"
	repo := &fakeTeacherRepo{teachers: []models.Teacher{{ID: 1, Name: "Kim", Role: "Teacher", Photo: &existing, IsActive: true, CreatedAt: time.Now()}}}
	svc, _ := newTeacherService(repo, nil)

	_, err := svc.Update(context.Background(), 1, dto.TeacherRequest{Name: "Kim Lee", Role: "Teacher", Photo: photo("x.exe")})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidUpload))
	assert.Equal(t, "Kim", repo.teachers[0].Name)
	assert.Equal(t, existing, *repo.teachers[0].Photo)
	assert.Equal(t, 0, repo.writes)
}

func TestUpdateTeacherWithoutPhotoKeepsExisting(t *testing.T) {
	existing := "uploads/teachers/1_old.png"
	repo := &fakeTeacherRepo{teachers: []models.Teacher{{ID: 1, Name: "Kim", Role: "Teacher", Photo: &existing, IsActive: true}}}
	svc, _ := newTeacherService(repo, nil)

	inactive := false
	updated, err := svc.Update(context.Background(), 1, dto.TeacherRequest{Name: "Kim", Role: "Head", Order: 3, IsActive: &inactive, Photo: &dto.PhotoUpload{}})
	require.NoError(t, err)
	assert.Equal(t, existing, *updated.Photo)
	assert.Equal(t, "Head", repo.teachers[0].Role)
	assert.False(t, repo.teachers[0].IsActive)

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestUpdateTeacherNotFound(t *testing.T) {
	svc, _ := newTeacherService(&fakeTeacherRepo{}, nil)

	_, err := svc.Update(context.Background(), 5, dto.TeacherRequest{Name: "A", Role: "B"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.True(t, appErrors.Is(svc.Delete(context.Background(), 5), appErrors.ErrNotFound))
}

func TestListTeachersOrdered(t *testing.T) {
	repo := &fakeTeacherRepo{teachers: []models.Teacher{
		{ID: 1, Name: "Zed", Order: 0, IsActive: true},
		{ID: 2, Name: "Amy", Order: 1, IsActive: true},
		{ID: 3, Name: "Bob", Order: 0, IsActive: true},
	}}
	svc, _ := newTeacherService(repo, nil)

	teachers, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	names := []string{teachers[0].Name, teachers[1].Name, teachers[2].Name}
	assert.Equal(t, []string{"Bob", "Zed", "Amy"}, names)
}
