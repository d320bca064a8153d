package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/golang/glog"

	"github.com/robotalks/roboclaw/pkg/telemetry"
)

// Topic suffixes under <prefix><id>/.
const (
	TelemetryTopic = "telemetry"
	MetaTopic      = "meta"
)

// DefaultPublishTimeout bounds the wait for a publish to be sent.
const DefaultPublishTimeout = time.Second

// Meta describes the controller. It is published retained.
type Meta struct {
	ID       string `json:"id"`
	Address  byte   `json:"address"`
	Firmware string `json:"firmware,omitempty"`
}

type publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

// Sink implements telemetry.Sink.
type Sink struct {
	ID             string
	TopicPrefix    string
	PublishTimeout time.Duration

	client paho.Client
	pub    publisher

	lock      sync.Mutex
	meta      *Meta
	connected bool
}

// NewSink creates a Sink from a broker URL, see ClientOptionsFromURL.
func NewSink(brokerURL, id string) (*Sink, error) {
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	s := &Sink{ID: id, TopicPrefix: topicPrefix}
	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(s.onConnectionLost)
	s.client = paho.NewClient(opts)
	s.pub = s.client
	return s, nil
}

// Topic returns the full topic for a suffix.
func (s *Sink) Topic(suffix string) string {
	return s.TopicPrefix + s.ID + "/" + suffix
}

// Name implements framework.Named.
func (s *Sink) Name() string {
	return "mqtt"
}

// SetMeta sets the retained meta message, published now if connected and
// again on every reconnect.
func (s *Sink) SetMeta(m Meta) {
	s.lock.Lock()
	s.meta = &m
	connected := s.connected
	s.lock.Unlock()
	if connected {
		s.publishMeta()
	}
}

// Run implements framework.Runnable: it connects and stays connected until
// ctx is done.
func (s *Sink) Run(ctx context.Context) error {
	token := s.client.Connect()
	if err := wait(ctx, token, 0); err != nil {
		return fmt.Errorf("connect MQTT broker: %w", err)
	}
	<-ctx.Done()
	s.client.Disconnect(250)
	return ctx.Err()
}

// Publish implements telemetry.Sink.
func (s *Sink) Publish(ctx context.Context, snapshot *telemetry.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	topic := s.Topic(TelemetryTopic)
	glog.V(2).Infof("PUB %q", topic)
	return wait(ctx, s.pub.Publish(topic, 0, false, data), s.publishTimeout())
}

func (s *Sink) publishTimeout() time.Duration {
	if s.PublishTimeout > 0 {
		return s.PublishTimeout
	}
	return DefaultPublishTimeout
}

func (s *Sink) publishMeta() {
	s.lock.Lock()
	meta := s.meta
	s.lock.Unlock()
	if meta == nil {
		return
	}
	data, err := json.Marshal(meta)
	if err != nil {
		glog.Errorf("encode meta error: %v", err)
		return
	}
	// paho handlers must not block on tokens
	s.pub.Publish(s.Topic(MetaTopic), 1, true, data)
}

func (s *Sink) onConnect(paho.Client) {
	glog.Info("MQTT connected")
	s.lock.Lock()
	s.connected = true
	s.lock.Unlock()
	s.publishMeta()
}

func (s *Sink) onConnectionLost(c paho.Client, err error) {
	glog.Warningf("MQTT connection lost: %v", err)
	s.lock.Lock()
	s.connected = false
	s.lock.Unlock()
}

// wait waits for token, up to timeout if non zero.
func wait(ctx context.Context, token paho.Token, timeout time.Duration) error {
	var deadline <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		deadline = timer.C
	}
	for !token.WaitTimeout(50 * time.Millisecond) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline:
			return fmt.Errorf("MQTT token timeout after %v", timeout)
		default:
		}
	}
	return token.Error()
}
