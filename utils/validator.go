package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationService struct {
	validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

func NewValidationService() *ValidationService {
	v := validator.New()

	// Register custom validators
	v.RegisterValidation("coordinate", validateCoordinate)
	v.RegisterValidation("incident_type", validateIncidentType)
	v.RegisterValidation("severity", validateSeverity)
	v.RegisterValidation("incident_status", validateIncidentStatus)
	v.RegisterValidation("zone_type", validateZoneType)
	v.RegisterValidation("risk_level", validateRiskLevel)
	v.RegisterValidation("document_kind", validateDocumentKind)

	return &ValidationService{
		validator: v,
	}
}

func (vs *ValidationService) ValidateStruct(s interface{}) []ValidationError {
	var validationErrors []ValidationError

	err := vs.validator.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: vs.getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func (vs *ValidationService) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "coordinate":
		return "Invalid coordinate value"
	case "incident_type":
		return "Invalid incident type"
	case "severity":
		return "Invalid severity level"
	case "incident_status":
		return "Invalid incident status"
	case "zone_type":
		return "Invalid zone type"
	case "risk_level":
		return "Invalid risk level"
	case "document_kind":
		return "Invalid document type"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Custom validation functions

func validateCoordinate(fl validator.FieldLevel) bool {
	coord := fl.Field().Float()
	fieldName := strings.ToLower(fl.FieldName())

	if strings.Contains(fieldName, "lat") {
		return coord >= -90 && coord <= 90
	}
	if strings.Contains(fieldName, "lon") || strings.Contains(fieldName, "lng") {
		return coord >= -180 && coord <= 180
	}

	return true
}

func validateIncidentType(fl validator.FieldLevel) bool {
	return stringInSet(fl.Field().String(),
		"safety_alert", "incident_report", "panic_button", "medical_emergency", "other")
}

func validateSeverity(fl validator.FieldLevel) bool {
	return stringInSet(fl.Field().String(), "low", "medium", "high", "critical")
}

func validateIncidentStatus(fl validator.FieldLevel) bool {
	return stringInSet(fl.Field().String(), "reported", "in_progress", "resolved", "cancelled")
}

func validateZoneType(fl validator.FieldLevel) bool {
	return stringInSet(fl.Field().String(), "green", "yellow", "red")
}

func validateRiskLevel(fl validator.FieldLevel) bool {
	return stringInSet(fl.Field().String(), "low", "medium", "high")
}

func validateDocumentKind(fl validator.FieldLevel) bool {
	return stringInSet(fl.Field().String(), "passport", "id_card", "drivers_license")
}

func stringInSet(value string, set ...string) bool {
	for _, item := range set {
		if value == item {
			return true
		}
	}
	return false
}

// Additional validation helpers

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
