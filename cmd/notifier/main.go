package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/piresc/yavijexpress/internal/pkg/config"
	"github.com/piresc/yavijexpress/internal/pkg/constants"
	"github.com/piresc/yavijexpress/internal/pkg/logger"
	"github.com/piresc/yavijexpress/internal/pkg/models"
	"github.com/piresc/yavijexpress/internal/pkg/nsq"
)

// The notifier drains the lifecycle notification topics and hands each event
// to the delivery channel. Delivery is currently a structured log line; the
// push/SMS integration plugs in here without touching the publishers.
func main() {
	cfg := config.InitConfig(".env")

	log, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	topics := []string{
		constants.TopicTripCreated,
		constants.TopicTripUpdated,
		constants.TopicTripCancelled,
		constants.TopicTripStarted,
		constants.TopicTripCompleted,
		constants.TopicBookingRequested,
		constants.TopicBookingConfirmed,
		constants.TopicBookingDenied,
		constants.TopicBookingCancelled,
	}

	consumers := make([]*nsq.Consumer, 0, len(topics))
	for _, topic := range topics {
		topic := topic
		consumer, err := nsq.NewConsumer(topic, "notifier", cfg.NSQ.NSQDAddress, func(body []byte) error {
			var event models.NotificationEvent
			if err := nsq.UnmarshalMessage(body, &event); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"topic":          topic,
				"user_id":        event.UserID,
				"related_entity": event.RelatedEntity,
				"related_id":     event.RelatedID,
				"title":          event.Title,
			}).Info("notification delivered")
			return nil
		})
		if err != nil {
			log.WithError(err).Fatal("failed to start consumer")
		}
		if len(cfg.NSQ.LookupdAddresses) > 0 {
			if err := consumer.ConnectToLookupd(cfg.NSQ.LookupdAddresses); err != nil {
				log.WithError(err).Fatal("failed to connect to lookupd")
			}
		}
		consumers = append(consumers, consumer)
	}

	log.Info("notifier started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	for _, consumer := range consumers {
		consumer.Stop()
	}
}
