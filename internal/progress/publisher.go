// SPDX-License-Identifier: MIT

// Package progress publishes in-progress annealing orders to MQTT so a map
// front end can animate the search.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/katalvlaran/waypath/tsp"
)

// ErrNotConnected is returned by Publish when there is no live client.
var ErrNotConnected = errors.New("progress: MQTT client not connected")

// DefaultPublishTimeout bounds the wait for a publish acknowledgement.
const DefaultPublishTimeout = 2 * time.Second

// Message is the JSON payload.
type Message struct {
	Iteration int     `json:"iteration"`
	Order     []int   `json:"order"`
	Final     bool    `json:"final,omitempty"`
	Length    float64 `json:"length,omitempty"`
}

// Publisher sends Messages to one topic. A nil or disconnected client turns
// every publish into a counted drop.
type Publisher struct {
	client  mqtt.Client
	topic   string
	qos     byte
	timeout time.Duration
	logger  *slog.Logger

	published atomic.Int64
	dropped   atomic.Int64
}

// NewPublisher creates a publisher for topic. A nil logger uses slog.Default().
func NewPublisher(client mqtt.Client, topic string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Publisher{
		client:  client,
		topic:   topic,
		qos:     0, // progress frames are fire and forget
		timeout: DefaultPublishTimeout,
		logger:  logger,
	}
}

// Publish encodes msg and sends it, waiting up to the publish timeout.
func (p *Publisher) Publish(msg Message) error {
	if p.client == nil || !p.client.IsConnected() {
		p.dropped.Add(1)
		return ErrNotConnected
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		p.dropped.Add(1)
		return fmt.Errorf("marshaling progress: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, false, payload)
	if token.WaitTimeout(p.timeout) && token.Error() != nil {
		p.dropped.Add(1)
		return fmt.Errorf("publishing to %s: %w", p.topic, token.Error())
	}
	p.published.Add(1)

	return nil
}

// Callback returns a tsp.IterationFunc that publishes the live order every
// every-th iteration. every <= 0 returns nil, which disables the hook.
// Failures are logged at debug level and counted, never returned.
func (p *Publisher) Callback(every int) tsp.IterationFunc {
	if every <= 0 {
		return nil
	}

	var iter int
	return func(order []int) {
		iter++
		if iter%every != 0 {
			return
		}
		if err := p.Publish(Message{Iteration: iter, Order: order}); err != nil {
			p.logger.Debug("progress publish failed",
				slog.String("topic", p.topic),
				slog.Int("iteration", iter),
				slog.Any("error", err))
		}
	}
}

// PublishResult sends the final order with its length.
func (p *Publisher) PublishResult(res tsp.Result) error {
	return p.Publish(Message{
		Iteration: res.Iterations,
		Order:     res.Order,
		Final:     true,
		Length:    res.Length,
	})
}

// Stats returns how many messages were sent and dropped.
func (p *Publisher) Stats() (published, dropped int64) {
	return p.published.Load(), p.dropped.Load()
}

// Connect dials broker and waits up to timeout for the session.
func Connect(broker, clientID string, timeout time.Duration) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetConnectTimeout(timeout)
	opts.SetAutoReconnect(false)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("connecting to %s: timed out after %s", broker, timeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", broker, err)
	}

	return client, nil
}
