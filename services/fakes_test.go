package services

import (
	"context"
	"sync"
	"time"

	"roamsafe/models"
	"roamsafe/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stores backing the service tests. Guarded by a mutex because
// incident reporting writes receipts from a background goroutine.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsActive = true
	s.users[user.ID.Hex()] = *user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeUserStore) FindByEmailOrPassport(ctx context.Context, email, passportID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email || user.PassportID == passportID {
			copied := user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeUserStore) Save(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID.Hex()]; !ok {
		return repositories.ErrNotFound
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID.Hex()] = *user
	return nil
}

type fakeIncidentStore struct {
	mu        sync.Mutex
	incidents []models.Incident
}

func newFakeIncidentStore() *fakeIncidentStore {
	return &fakeIncidentStore{}
}

func (s *fakeIncidentStore) Create(ctx context.Context, incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	incident.ID = primitive.NewObjectID()
	incident.CreatedAt = time.Now()
	incident.UpdatedAt = time.Now()
	// Prepend so iteration order matches the newest-first repository sort.
	s.incidents = append([]models.Incident{*incident}, s.incidents...)
	return nil
}

func (s *fakeIncidentStore) GetByIDAndUser(ctx context.Context, id, userID string) (*models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, incident := range s.incidents {
		if incident.ID.Hex() == id && incident.UserID.Hex() == userID {
			copied := incident
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeIncidentStore) FindByUser(ctx context.Context, userID, status, incidentType string, page, limit int) ([]models.Incident, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Incident{}
	for _, incident := range s.incidents {
		if incident.UserID.Hex() != userID {
			continue
		}
		if status != "" && incident.Status != status {
			continue
		}
		if incidentType != "" && incident.Type != incidentType {
			continue
		}
		matched = append(matched, incident)
	}

	total := int64(len(matched))
	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Incident{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *fakeIncidentStore) FindRecentByUser(ctx context.Context, userID string, limit int) ([]models.Incident, error) {
	incidents, _, err := s.FindByUser(ctx, userID, "", "", 1, limit)
	return incidents, err
}

func (s *fakeIncidentStore) Save(ctx context.Context, incident *models.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.incidents {
		if s.incidents[i].ID == incident.ID {
			incident.UpdatedAt = time.Now()
			s.incidents[i] = *incident
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeZoneStore struct {
	mu    sync.Mutex
	zones []models.SafetyZone
}

func newFakeZoneStore(zones ...models.SafetyZone) *fakeZoneStore {
	return &fakeZoneStore{zones: zones}
}

func (s *fakeZoneStore) Create(ctx context.Context, zone *models.SafetyZone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	zone.ID = primitive.NewObjectID()
	zone.CreatedAt = time.Now()
	zone.UpdatedAt = time.Now()
	zone.LastUpdated = time.Now()
	zone.IsActive = true
	s.zones = append(s.zones, *zone)
	return nil
}

func (s *fakeZoneStore) GetByID(ctx context.Context, id string) (*models.SafetyZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, zone := range s.zones {
		if zone.ID.Hex() == id {
			copied := zone
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *fakeZoneStore) FindActive(ctx context.Context) ([]models.SafetyZone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := []models.SafetyZone{}
	for _, zone := range s.zones {
		if zone.IsActive {
			active = append(active, zone)
		}
	}
	return active, nil
}

// recordingNotifier captures alert sends for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	sends []string
}

func (n *recordingNotifier) SendIncidentAlert(toPhoneNumber, contactName, reporterName, incidentTitle string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sends = append(n.sends, toPhoneNumber)
	return nil
}

func (n *recordingNotifier) sentTo() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string{}, n.sends...)
}
