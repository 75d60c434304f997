package messagestream

import (
	"fmt"
	"time"

	"tour-booking/config"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TopicPaymentReceived  = "pix_payment_received"
	TopicBookingCreated   = "booking_created"
	TopicBookingConfirmed = "booking_confirmed"
	TopicBookingExpired   = "booking_expired"
	TopicPoisoned         = "poisoned_queue"
)

type Ampq struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
	local  *gochannel.GoChannel
}

// NewAmpq returns the message stream. When the broker is disabled an
// in-process channel pub/sub stands in for it.
func NewAmpq(cfg *config.MessageStreamConfig) *Ampq {
	a := &Ampq{
		cfg:    cfg,
		logger: watermill.NewStdLogger(false, false),
	}
	if !cfg.Enabled {
		a.local = gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, a.logger)
	}
	return a
}

func (a *Ampq) uri() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", a.cfg.Username, a.cfg.Password, a.cfg.Host, a.cfg.Port)
}

func (a *Ampq) NewSubscriber() (message.Subscriber, error) {
	if a.local != nil {
		return a.local, nil
	}
	return amqp.NewSubscriber(amqp.NewDurableQueueConfig(a.uri()), a.logger)
}

func (a *Ampq) NewPublisher() (message.Publisher, error) {
	if a.local != nil {
		return a.local, nil
	}
	return amqp.NewPublisher(amqp.NewDurableQueueConfig(a.uri()), a.logger)
}

// NewRouter wires one consumer. Messages that still fail after retries are
// moved to poisonTopic.
func NewRouter(publisher message.Publisher, poisonTopic string, handlerName string, subscribeTopic string, subscriber message.Subscriber, handlerFunc message.NoPublishHandlerFunc) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	poisonQueue, err := middleware.PoisonQueue(publisher, poisonTopic)
	if err != nil {
		return nil, err
	}

	router.AddMiddleware(
		middleware.Recoverer,
		poisonQueue,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			Logger:          logger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(handlerName, subscribeTopic, subscriber, handlerFunc)

	return router, nil
}
