package services

import (
	"fmt"

	"roamsafe/config"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers incident alerts to emergency contact phone numbers.
type Notifier interface {
	SendIncidentAlert(toPhoneNumber, contactName, reporterName, incidentTitle string) error
}

// NewNotifier returns a Twilio-backed notifier when credentials are
// configured, otherwise nil. With a nil notifier incident receipts stay
// pending, recording the intent without a delivery attempt.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioPhoneNumber == "" {
		logrus.Warn("Twilio credentials not configured, SMS notification disabled")
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &TwilioNotifier{
		client:     client,
		fromNumber: cfg.TwilioPhoneNumber,
	}
}

type TwilioNotifier struct {
	client     *twilio.RestClient
	fromNumber string
}

func (tn *TwilioNotifier) SendIncidentAlert(toPhoneNumber, contactName, reporterName, incidentTitle string) error {
	body := fmt.Sprintf("Hi %s, %s has reported a safety incident: \"%s\". They listed you as an emergency contact. Please check on them.",
		contactName, reporterName, incidentTitle)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toPhoneNumber)
	params.SetFrom(tn.fromNumber)
	params.SetBody(body)

	resp, err := tn.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}

	if resp.Sid != nil {
		logrus.WithFields(logrus.Fields{
			"sid": *resp.Sid,
			"to":  toPhoneNumber,
		}).Info("Incident alert SMS sent")
	}

	return nil
}
