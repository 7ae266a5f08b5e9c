package services

import (
	"context"
	"errors"
	"time"

	"roamsafe/models"
	"roamsafe/repositories"
	"roamsafe/utils"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultIncidentPage  = 1
	defaultIncidentLimit = 10
	defaultHistoryLimit  = 20

	// Matches JavaScript Date.toDateString(), which the mobile client
	// groups history entries by.
	historyDateLayout = "Mon Jan 2 2006"
)

type IncidentService struct {
	incidentStore IncidentStore
	userStore     UserStore
	notifier      Notifier
	validator     *utils.ValidationService
}

func NewIncidentService(incidentStore IncidentStore, userStore UserStore, notifier Notifier) *IncidentService {
	return &IncidentService{
		incidentStore: incidentStore,
		userStore:     userStore,
		notifier:      notifier,
		validator:     utils.NewValidationService(),
	}
}

// ReportIncident persists the incident and kicks off contact notification in
// the background. The response never waits on SMS delivery.
func (is *IncidentService) ReportIncident(ctx context.Context, userID string, req models.ReportIncidentRequest) (*models.IncidentSummary, error) {
	if validationErrors := is.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	user, err := is.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.NewDatabaseError("find user", err)
	}

	severity := req.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}

	images := make([]models.IncidentImage, len(req.Images))
	for i, img := range req.Images {
		if img.UploadedAt.IsZero() {
			img.UploadedAt = time.Now()
		}
		images[i] = img
	}

	// Snapshot the contact list as pending receipts at report time. Later
	// edits to the user's contacts do not change who was notified.
	now := time.Now()
	receipts := make([]models.NotificationReceipt, len(user.EmergencyContacts))
	for i, contact := range user.EmergencyContacts {
		receipts[i] = models.NotificationReceipt{
			ContactID:  contact.ID,
			NotifiedAt: now,
			Status:     models.NotificationPending,
		}
	}

	incident := models.Incident{
		UserID:      user.ID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location: models.IncidentLocation{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Address:   req.Address,
			City:      req.City,
			Country:   req.Country,
		},
		Severity:                  severity,
		Status:                    models.StatusReported,
		Images:                    images,
		EmergencyContactsNotified: receipts,
	}

	if err := is.incidentStore.Create(ctx, &incident); err != nil {
		return nil, utils.NewDatabaseError("create incident", err)
	}

	// Without a notifier the receipts stay pending: the intent is recorded
	// but no delivery is attempted.
	if is.notifier != nil {
		go is.notifyContacts(user, &incident)
	}

	return &models.IncidentSummary{
		ID:        incident.ID.Hex(),
		Type:      incident.Type,
		Title:     incident.Title,
		Status:    incident.Status,
		Severity:  incident.Severity,
		CreatedAt: &incident.CreatedAt,
	}, nil
}

// notifyContacts sends SMS alerts and records the outcome on the incident.
// Runs detached from the request; failures are logged, not surfaced.
func (is *IncidentService) notifyContacts(user *models.User, incident *models.Incident) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	byID := make(map[primitive.ObjectID]models.EmergencyContact, len(user.EmergencyContacts))
	for _, contact := range user.EmergencyContacts {
		byID[contact.ID] = contact
	}

	for i, receipt := range incident.EmergencyContactsNotified {
		contact, ok := byID[receipt.ContactID]
		if !ok {
			continue
		}

		if err := is.notifier.SendIncidentAlert(contact.PhoneNumber, contact.Name, user.FullName, incident.Title); err != nil {
			logrus.WithFields(logrus.Fields{
				"incidentId": incident.ID.Hex(),
				"contactId":  receipt.ContactID.Hex(),
			}).Warnf("Failed to notify emergency contact: %v", err)
			incident.EmergencyContactsNotified[i].Status = models.NotificationFailed
			continue
		}

		incident.EmergencyContactsNotified[i].Status = models.NotificationDelivered
		incident.EmergencyContactsNotified[i].NotifiedAt = time.Now()
	}

	if err := is.incidentStore.Save(ctx, incident); err != nil {
		logrus.Errorf("Failed to record notification receipts for incident %s: %v", incident.ID.Hex(), err)
	}
}

// ListMyIncidents returns a page of the caller's incidents, newest first.
// Notification receipts are stripped from list results.
func (is *IncidentService) ListMyIncidents(ctx context.Context, userID string, req models.ListIncidentsRequest) (*models.IncidentListResponse, error) {
	if validationErrors := is.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	page := req.Page
	if page < 1 {
		page = defaultIncidentPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultIncidentLimit
	}

	incidents, total, err := is.incidentStore.FindByUser(ctx, userID, req.Status, req.Type, page, limit)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.NewDatabaseError("list incidents", err)
	}

	for i := range incidents {
		incidents[i].EmergencyContactsNotified = nil
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.IncidentListResponse{
		Incidents:   incidents,
		TotalPages:  totalPages,
		CurrentPage: page,
		Total:       total,
	}, nil
}

// GetIncidentHistory groups the user's most recent incidents by the calendar
// date they were created on, preserving newest-first order across groups.
func (is *IncidentService) GetIncidentHistory(ctx context.Context, userID string, limit int) ([]models.IncidentHistoryGroup, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}

	incidents, err := is.incidentStore.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrUserNotFound
		}
		return nil, utils.NewDatabaseError("list incidents", err)
	}

	groups := []models.IncidentHistoryGroup{}
	indexByDate := map[string]int{}

	for _, incident := range incidents {
		date := incident.CreatedAt.Format(historyDateLayout)
		idx, ok := indexByDate[date]
		if !ok {
			groups = append(groups, models.IncidentHistoryGroup{Date: date})
			idx = len(groups) - 1
			indexByDate[date] = idx
		}

		createdAt := incident.CreatedAt
		groups[idx].Incidents = append(groups[idx].Incidents, models.IncidentSummary{
			ID:        incident.ID.Hex(),
			Type:      incident.Type,
			Title:     incident.Title,
			Status:    incident.Status,
			Severity:  incident.Severity,
			CreatedAt: &createdAt,
		})
	}

	return groups, nil
}

func (is *IncidentService) GetIncident(ctx context.Context, userID, incidentID string) (*models.Incident, error) {
	incident, err := is.incidentStore.GetByIDAndUser(ctx, incidentID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrIncidentNotFound
		}
		return nil, utils.NewDatabaseError("find incident", err)
	}
	return incident, nil
}

// UpdateIncidentStatus sets any valid status. Moving to resolved stamps the
// resolution fields; there is no enforced transition graph.
func (is *IncidentService) UpdateIncidentStatus(ctx context.Context, userID, incidentID string, req models.UpdateIncidentStatusRequest) (*models.IncidentSummary, error) {
	if validationErrors := is.validator.ValidateStruct(req); len(validationErrors) > 0 {
		return nil, utils.NewValidationError("Validation failed", validationErrors)
	}

	incident, err := is.incidentStore.GetByIDAndUser(ctx, incidentID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, utils.ErrIncidentNotFound
		}
		return nil, utils.NewDatabaseError("find incident", err)
	}

	incident.Status = req.Status
	if req.Status == models.StatusResolved {
		now := time.Now()
		userObjectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return nil, utils.ErrUserNotFound
		}
		incident.ResolvedAt = &now
		incident.ResolvedBy = &userObjectID
		incident.ResolutionNotes = req.ResolutionNotes
	}

	if err := is.incidentStore.Save(ctx, incident); err != nil {
		return nil, utils.NewDatabaseError("save incident", err)
	}

	return &models.IncidentSummary{
		ID:         incident.ID.Hex(),
		Status:     incident.Status,
		ResolvedAt: incident.ResolvedAt,
	}, nil
}
