package services

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"projectconnect/internal/config"
	"projectconnect/internal/models"
	"projectconnect/internal/repositories"
)

func TestMain(m *testing.M) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	os.Exit(m.Run())
}

// In-memory repositories. They copy on read and write so a service holding
// a loaded record never mutates the store behind the repository's back.

type fakeUserRepo struct {
	users map[string]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]models.User)}
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByUsernames(usernames []string) ([]models.User, error) {
	var out []models.User
	for _, name := range usernames {
		if u, ok := r.users[name]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindAll() ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *fakeUserRepo) Search(query string) ([]models.User, error) {
	q := strings.ToLower(query)
	all, _ := r.FindAll()
	var out []models.User
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.Username), q) || strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ExistsByUsername(username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.Username]; ok {
		return repositories.ErrUserAlreadyExists
	}
	r.users[user.Username] = *user
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.Username]; !ok {
		return repositories.ErrUserNotFound
	}
	r.users[user.Username] = *user
	return nil
}

type fakeProjectRepo struct {
	projects map[string]models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]models.Project)}
}

func (r *fakeProjectRepo) FindByName(name string) (*models.Project, error) {
	p, ok := r.projects[name]
	if !ok {
		return nil, repositories.ErrProjectNotFound
	}
	return &p, nil
}

func (r *fakeProjectRepo) FindByNames(names []string) ([]models.Project, error) {
	var out []models.Project
	for _, name := range names {
		if p, ok := r.projects[name]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) FindAll() ([]models.Project, error) {
	out := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProjectRepo) FindInProgress() ([]models.Project, error) {
	all, _ := r.FindAll()
	var out []models.Project
	for _, p := range all {
		if p.IsInProgress {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Search(query string) ([]models.Project, error) {
	q := strings.ToLower(query)
	all, _ := r.FindAll()
	var out []models.Project
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) ExistsByName(name string) (bool, error) {
	_, ok := r.projects[name]
	return ok, nil
}

func (r *fakeProjectRepo) Create(project *models.Project) error {
	if _, ok := r.projects[project.Name]; ok {
		return repositories.ErrProjectAlreadyExists
	}
	r.projects[project.Name] = *project
	return nil
}

func (r *fakeProjectRepo) Update(project *models.Project) error {
	if _, ok := r.projects[project.Name]; !ok {
		return repositories.ErrProjectNotFound
	}
	r.projects[project.Name] = *project
	return nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.seq++
	if notification.ID == "" {
		notification.ID = fmt.Sprintf("n-%d", r.seq)
	}
	notification.CreatedAt = time.Unix(int64(r.seq), 0)
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) FindByID(id string) (*models.Notification, error) {
	for _, n := range r.notifications {
		if n.ID == id {
			out := n
			return &out, nil
		}
	}
	return nil, repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) FindForRecipient(username string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.Recipient == username {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeNotificationRepo) Delete(id string) error {
	for i, n := range r.notifications {
		if n.ID == id {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

// operationsFor lists the recorded operation kinds for a recipient, oldest
// first, for easy assertions.
func (r *fakeNotificationRepo) operationsFor(recipient string) []models.Operation {
	var out []models.Operation
	for _, n := range r.notifications {
		if n.Recipient == recipient {
			out = append(out, n.Operation)
		}
	}
	return out
}
