package service

import (
	"context"
	"database/sql"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/kland-web/internal/models"
	"github.com/noah-isme/kland-web/internal/repository"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     []models.User
	createErr error
	findErr   error
	creates   int
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = int64(len(f.users) + 1)
	user.CreatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.User(nil), f.users...), nil
}

type fakeApplicationRepo struct {
	apps      []models.CourseApplication
	updateErr error
	updates   int
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *models.CourseApplication) error {
	app.ID = int64(len(f.apps) + 1)
	app.CreatedAt = time.Now()
	f.apps = append(f.apps, *app)
	return nil
}

func (f *fakeApplicationRepo) List(ctx context.Context) ([]models.CourseApplication, error) {
	return append([]models.CourseApplication(nil), f.apps...), nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	f.updates++
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.apps {
		if f.apps[i].ID == id {
			f.apps[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeNewsRepo struct {
	items []models.News
}

func (f *fakeNewsRepo) List(ctx context.Context, publishedOnly bool, limit int) ([]models.News, error) {
	out := []models.News{}
	for _, n := range f.items {
		if publishedOnly && !n.IsPublished {
			continue
		}
		out = append(out, n)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNewsRepo) FindByID(ctx context.Context, id int64) (*models.News, error) {
	for _, n := range f.items {
		if n.ID == id {
			item := n
			return &item, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeNewsRepo) Create(ctx context.Context, item *models.News) error {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeNewsRepo) Update(ctx context.Context, item *models.News) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakePeriodRepo struct {
	periods []models.AdmissionPeriod
}

func (f *fakePeriodRepo) List(ctx context.Context, activeOnly bool) ([]models.AdmissionPeriod, error) {
	out := []models.AdmissionPeriod{}
	for _, p := range f.periods {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePeriodRepo) Create(ctx context.Context, period *models.AdmissionPeriod) error {
	period.ID = int64(len(f.periods) + 1)
	f.periods = append(f.periods, *period)
	return nil
}

func (f *fakePeriodRepo) Update(ctx context.Context, period *models.AdmissionPeriod) error {
	for i := range f.periods {
		if f.periods[i].ID == period.ID {
			f.periods[i] = *period
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakePeriodRepo) Delete(ctx context.Context, id int64) error {
	for i := range f.periods {
		if f.periods[i].ID == id {
			f.periods = append(f.periods[:i], f.periods[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeMessageRepo struct {
	msgs []models.Message
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *models.Message) error {
	msg.ID = int64(len(f.msgs) + 1)
	f.msgs = append(f.msgs, *msg)
	return nil
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]models.Message, error) {
	return append([]models.Message(nil), f.msgs...), nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id int64) error {
	for i := range f.msgs {
		if f.msgs[i].ID == id {
			f.msgs = append(f.msgs[:i], f.msgs[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeTeacherRepo struct {
	teachers []models.Teacher
	writes   int
}

func (f *fakeTeacherRepo) List(ctx context.Context, activeOnly bool) ([]models.Teacher, error) {
	out := []models.Teacher{}
	for _, t := range f.teachers {
		if activeOnly && !t.IsActive {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.ID == id {
			teacher := t
			return &teacher, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	f.writes++
	teacher.ID = int64(len(f.teachers) + 1)
	f.teachers = append(f.teachers, *teacher)
	return nil
}

func (f *fakeTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error {
	f.writes++
	for i := range f.teachers {
		if f.teachers[i].ID == teacher.ID {
			f.teachers[i] = *teacher
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeTeacherRepo) Delete(ctx context.Context, id int64) error {
	for i := range f.teachers {
		if f.teachers[i].ID == id {
			f.teachers = append(f.teachers[:i], f.teachers[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeSessionStore struct {
	revoked map[string]time.Duration
	err     error
}

func (f *fakeSessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	if f.revoked == nil {
		f.revoked = map[string]time.Duration{}
	}
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeSessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[jti]
	return ok, nil
}

type memoryStorage struct {
	files map[string][]byte
}

func (m *memoryStorage) SaveStream(filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	m.files[filename] = data
	return filename, nil
}
