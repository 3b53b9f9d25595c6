package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

// WebhookNotifier posts booking events to the notification
// collaborator. With no URL configured it only logs, which keeps local
// development working without the collaborator running.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(cfg config.NotifyConfig) commands.Notifier {
	return &WebhookNotifier{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type event struct {
	Type          string     `json:"type"`
	BookingID     uuid.UUID  `json:"booking_id"`
	ClientID      uuid.UUID  `json:"client_id"`
	ClientEmail   string     `json:"client_email"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`
}

func (n *WebhookNotifier) SendVerificationRequest(ctx context.Context, client commands.ClientSnapshot, bookingID uuid.UUID, holdExpiresAt time.Time) error {
	return n.post(ctx, event{
		Type:          "verification_requested",
		BookingID:     bookingID,
		ClientID:      client.ID,
		ClientEmail:   client.Email,
		HoldExpiresAt: &holdExpiresAt,
	})
}

func (n *WebhookNotifier) SendBookingConfirmed(ctx context.Context, client commands.ClientSnapshot, bookingID uuid.UUID) error {
	return n.post(ctx, event{
		Type:        "booking_confirmed",
		BookingID:   bookingID,
		ClientID:    client.ID,
		ClientEmail: client.Email,
	})
}

func (n *WebhookNotifier) SendBookingCanceled(ctx context.Context, client commands.ClientSnapshot, bookingID uuid.UUID) error {
	return n.post(ctx, event{
		Type:        "booking_canceled",
		BookingID:   bookingID,
		ClientID:    client.ID,
		ClientEmail: client.Email,
	})
}

func (n *WebhookNotifier) post(ctx context.Context, ev event) error {
	if n.url == "" {
		slog.Info("notification (no webhook configured)",
			"type", ev.Type,
			"booking_id", ev.BookingID)
		return nil
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to deliver notification")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("notification endpoint returned %d", resp.StatusCode))
	}
	return nil
}
