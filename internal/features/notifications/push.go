package notifications

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/rakibhasan-dev/findback/internal/config"
)

// NewMessagingClient initializes the FCM client used for best-effort push
// delivery. Returns nil without error when no credentials are configured, in
// which case notifications are store-only.
func NewMessagingClient(ctx context.Context, cfg *config.Config) (*messaging.Client, error) {
	if cfg.FirebaseCredentialsPath == "" {
		return nil, nil
	}

	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize FCM client: %w", err)
	}

	return client, nil
}

// userTopic is the per-user FCM topic clients subscribe to.
func userTopic(userID string) string {
	return "user_" + userID
}
