package mqtt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/homesim-core/internal/infrastructure/config"
)

func TestTopics(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "device state", got: topics.DeviceState("light_1"), want: "homesim/device/light_1/state"},
		{name: "sensor readings", got: topics.SensorReadings(), want: "homesim/sensors/readings"},
		{name: "system status", got: topics.SystemStatus(), want: "homesim/system/status"},
		{name: "all device states", got: topics.AllDeviceStates(), want: "homesim/device/+/state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestBuildClientOptions(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     1883,
			ClientID: "homesim-test",
		},
		Auth: config.MQTTAuthConfig{
			Username: "sim",
			Password: "secret",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     60,
		},
	}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 {
		t.Fatalf("expected 1 broker URL, got %d", len(opts.Servers))
	}
	if got := opts.Servers[0].String(); got != "tcp://broker.local:1883" {
		t.Errorf("broker URL = %q, want tcp://broker.local:1883", got)
	}
	if opts.ClientID != "homesim-test" {
		t.Errorf("client ID = %q", opts.ClientID)
	}
	if opts.Username != "sim" {
		t.Errorf("username = %q", opts.Username)
	}
}

func TestBuildClientOptions_TLS(t *testing.T) {
	cfg := config.MQTTConfig{
		Broker: config.MQTTBrokerConfig{
			Host:     "broker.local",
			Port:     8883,
			TLS:      true,
			ClientID: "homesim-test",
		},
	}

	opts := buildClientOptions(cfg)

	if got := opts.Servers[0].Scheme; got != "ssl" {
		t.Errorf("scheme = %q, want ssl", got)
	}
	if opts.TLSConfig == nil {
		t.Error("TLS config not set")
	}
}

func TestStatusPayloads(t *testing.T) {
	for name, payload := range map[string]string{
		"online":  buildOnlinePayload("homesim-core"),
		"offline": buildOfflinePayload("homesim-core"),
	} {
		t.Run(name, func(t *testing.T) {
			var decoded map[string]string
			if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
				t.Fatalf("payload is not valid JSON: %v", err)
			}
			if decoded["status"] != name {
				t.Errorf("status = %q, want %q", decoded["status"], name)
			}
			if decoded["client_id"] != "homesim-core" {
				t.Errorf("client_id = %q", decoded["client_id"])
			}
		})
	}
}

func TestPublish_Validation(t *testing.T) {
	c := &Client{}

	if err := c.Publish("", []byte("x"), 1, false); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("empty topic: got %v, want ErrInvalidTopic", err)
	}

	if err := c.Publish("homesim/sensors/readings", []byte("x"), 3, false); !errors.Is(err, ErrInvalidQoS) {
		t.Errorf("qos 3: got %v, want ErrInvalidQoS", err)
	}

	huge := []byte(strings.Repeat("a", maxPayloadSize+1))
	if err := c.Publish("homesim/sensors/readings", huge, 1, false); !errors.Is(err, ErrPublishFailed) {
		t.Errorf("oversized payload: got %v, want ErrPublishFailed", err)
	}
}
