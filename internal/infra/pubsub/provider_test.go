package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		want    any
	}{
		{name: "nil config disables publishing", cfg: nil, want: &noopPublisher{}},
		{name: "empty provider disables publishing", cfg: &config.PubSubConfig{}, want: &noopPublisher{}},
		{
			name: "local provider",
			cfg:  &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9090/events"},
			want: &localHTTPPublisher{},
		},
		{
			name:    "local provider without endpoint",
			cfg:     &config.PubSubConfig{Provider: ProviderLocal},
			wantErr: "localEndpoint is required",
		},
		{
			name:    "google provider without topic",
			cfg:     &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "shop"},
			wantErr: "topicId are required",
		},
		{
			name:    "unknown provider",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := openPublisher(context.Background(), tt.cfg, logger)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestNewOrderMessage(t *testing.T) {
	event := &service.OrderEvent{
		Type:      service.OrderEventStatusChanged,
		RequestID: "req-9",
		OrderID:   "507f1f77bcf86cd799439011",
		UserID:    "507f1f77bcf86cd799439012",
		Status:    "Shipped",
	}

	msg, err := newOrderMessage(event)
	require.NoError(t, err)

	assert.Equal(t, event.OrderID, msg.OrderingKey)
	assert.Equal(t, "req-9", msg.Attributes["request_id"])
	assert.Equal(t, service.OrderEventStatusChanged, msg.Attributes["type"])

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, "Shipped", decoded.Status)
}

func TestTopicName(t *testing.T) {
	assert.Equal(t, "projects/shop/topics/orders", topicName("shop", "orders"))
}
