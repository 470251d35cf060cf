package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"lifeorg/backend/internal/model"
	"lifeorg/backend/internal/repository"
)

// ── mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%03d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

// ── mock TaskRepository ──

type mockTaskRepo struct {
	tasks map[string]*model.Task
	seq   int
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*model.Task)}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == "" {
		m.seq++
		task.TaskID = fmt.Sprintf("task-%03d", m.seq)
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) BatchCreate(ctx context.Context, tasks []model.Task) error {
	for i := range tasks {
		if err := m.Create(ctx, &tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id, userID string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok && t.UserID == userID {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id, userID string) (int64, error) {
	if t, ok := m.tasks[id]; ok && t.UserID == userID {
		delete(m.tasks, id)
		return 1, nil
	}
	return 0, nil
}

func (m *mockTaskRepo) List(_ context.Context, userID string, filter repository.TaskFilter, offset, limit int) ([]model.Task, int64, error) {
	var matched []model.Task
	for _, t := range m.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && t.Status != filter.Status {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(t.Title), q) &&
				!strings.Contains(strings.ToLower(t.Description), q) {
				continue
			}
		}
		matched = append(matched, *t)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].TaskID < matched[j].TaskID })

	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockTaskRepo) Summary(_ context.Context, userID string) (*repository.TaskSummary, error) {
	var s repository.TaskSummary
	for _, t := range m.tasks {
		if t.UserID != userID {
			continue
		}
		s.Total++
		if t.Status == model.TaskStatusCompleted {
			s.Completed++
		}
	}
	return &s, nil
}

func (m *mockTaskRepo) DeleteStarter(_ context.Context, userID string) (int64, error) {
	var deleted int64
	for id, t := range m.tasks {
		if t.UserID == userID && t.IsStarter {
			delete(m.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *mockTaskRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.tasks)), nil
}

func (m *mockTaskRepo) CountCompleted(_ context.Context) (int64, error) {
	var n int64
	for _, t := range m.tasks {
		if t.Status == model.TaskStatusCompleted {
			n++
		}
	}
	return n, nil
}

// ── mock DeadlineRepository ──

type mockDeadlineRepo struct {
	deadlines map[string]*model.Deadline
	seq       int
}

func newMockDeadlineRepo() *mockDeadlineRepo {
	return &mockDeadlineRepo{deadlines: make(map[string]*model.Deadline)}
}

func (m *mockDeadlineRepo) Create(_ context.Context, d *model.Deadline) error {
	if d.DeadlineID == "" {
		m.seq++
		d.DeadlineID = fmt.Sprintf("dl-%03d", m.seq)
	}
	m.deadlines[d.DeadlineID] = d
	return nil
}

func (m *mockDeadlineRepo) GetByID(_ context.Context, id, userID string) (*model.Deadline, error) {
	if d, ok := m.deadlines[id]; ok && d.UserID == userID {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeadlineRepo) Update(_ context.Context, d *model.Deadline) error {
	m.deadlines[d.DeadlineID] = d
	return nil
}

func (m *mockDeadlineRepo) Delete(_ context.Context, id, userID string) (int64, error) {
	if d, ok := m.deadlines[id]; ok && d.UserID == userID {
		delete(m.deadlines, id)
		return 1, nil
	}
	return 0, nil
}

func (m *mockDeadlineRepo) List(_ context.Context, userID string) ([]model.Deadline, error) {
	var result []model.Deadline
	for _, d := range m.deadlines {
		if d.UserID == userID {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	return result, nil
}

func (m *mockDeadlineRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.deadlines)), nil
}

// ── mock AnnouncementRepository ──

type mockAnnouncementRepo struct {
	announcements map[string]*model.Announcement
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{announcements: make(map[string]*model.Announcement)}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, a *model.Announcement) error {
	if a.AnnouncementID == "" {
		m.seq++
		a.AnnouncementID = fmt.Sprintf("ann-%03d", m.seq)
	}
	m.announcements[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) GetByID(_ context.Context, id string) (*model.Announcement, error) {
	if a, ok := m.announcements[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAnnouncementRepo) Update(_ context.Context, a *model.Announcement) error {
	m.announcements[a.AnnouncementID] = a
	return nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.announcements[id]; ok {
		delete(m.announcements, id)
		return 1, nil
	}
	return 0, nil
}

func (m *mockAnnouncementRepo) List(_ context.Context) ([]model.Announcement, error) {
	var result []model.Announcement
	for _, a := range m.announcements {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AnnouncementID < result[j].AnnouncementID })
	return result, nil
}

func (m *mockAnnouncementRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.announcements)), nil
}

// ── mock TemplateRepository ──

type mockTemplateRepo struct {
	templates map[string]*model.ScheduleTemplate
	seq       int
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[string]*model.ScheduleTemplate)}
}

func (m *mockTemplateRepo) Create(_ context.Context, t *model.ScheduleTemplate) error {
	if t.TemplateID == "" {
		m.seq++
		t.TemplateID = fmt.Sprintf("tpl-%03d", m.seq)
	}
	m.templates[t.TemplateID] = t
	return nil
}

func (m *mockTemplateRepo) GetByID(_ context.Context, id, userID string) (*model.ScheduleTemplate, error) {
	if t, ok := m.templates[id]; ok && t.UserID == userID {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) Update(_ context.Context, t *model.ScheduleTemplate) error {
	m.templates[t.TemplateID] = t
	return nil
}

func (m *mockTemplateRepo) Delete(_ context.Context, id, userID string) (int64, error) {
	if t, ok := m.templates[id]; ok && t.UserID == userID {
		delete(m.templates, id)
		return 1, nil
	}
	return 0, nil
}

func (m *mockTemplateRepo) List(_ context.Context, userID, kind string) ([]model.ScheduleTemplate, error) {
	var result []model.ScheduleTemplate
	for _, t := range m.templates {
		if t.UserID != userID {
			continue
		}
		if kind != "" && t.Kind != kind {
			continue
		}
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Weekday != result[j].Weekday {
			return result[i].Weekday < result[j].Weekday
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

// ── mock EntryRepository ──

type mockEntryRepo struct {
	entries map[string]*model.ScheduleEntry
	seq     int
}

func newMockEntryRepo() *mockEntryRepo {
	return &mockEntryRepo{entries: make(map[string]*model.ScheduleEntry)}
}

func (m *mockEntryRepo) Create(_ context.Context, e *model.ScheduleEntry) error {
	if e.EntryID == "" {
		m.seq++
		e.EntryID = fmt.Sprintf("entry-%03d", m.seq)
	}
	m.entries[e.EntryID] = e
	return nil
}

func (m *mockEntryRepo) GetByID(_ context.Context, id, userID string) (*model.ScheduleEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEntryRepo) Update(_ context.Context, e *model.ScheduleEntry) error {
	m.entries[e.EntryID] = e
	return nil
}

func (m *mockEntryRepo) Delete(_ context.Context, id, userID string) (int64, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
		return 1, nil
	}
	return 0, nil
}

func (m *mockEntryRepo) List(_ context.Context, userID string, filter repository.EntryFilter) ([]model.ScheduleEntry, error) {
	var result []model.ScheduleEntry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if !filter.From.IsZero() && e.EntryDate.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && e.EntryDate.After(filter.To) {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].EntryDate.Equal(result[j].EntryDate) {
			return result[i].EntryDate.Before(result[j].EntryDate)
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockEntryRepo) ListInRange(ctx context.Context, userID, kind string, start, end time.Time) ([]model.ScheduleEntry, error) {
	return m.List(ctx, userID, repository.EntryFilter{Kind: kind, From: start, To: end})
}
