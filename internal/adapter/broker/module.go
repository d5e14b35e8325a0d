package broker

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/vegdelivery/internal/config"
)

// Module exposes the notification publisher to fx graph.
var Module = fx.Provide(newPublisher)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) (Publisher, error) {
	var publishers []Publisher
	if p.Config.AMQPURL != "" {
		amqpPub, err := Dial(p.Config.AMQPURL, p.Config.NotificationExchange, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Logger.Info("notification broker enabled", "backend", "amqp", "exchange", p.Config.NotificationExchange)
		publishers = append(publishers, amqpPub)
	}
	if len(p.Config.KafkaBrokers) > 0 {
		kafkaPub, err := NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Logger)
		if err != nil {
			_ = Fanout(publishers).Close()
			return nil, err
		}
		p.Logger.Info("notification broker enabled", "backend", "kafka", "topic", p.Config.KafkaTopic)
		publishers = append(publishers, kafkaPub)
	}

	switch len(publishers) {
	case 0:
		p.Logger.Info("notification broker disabled")
		return NopPublisher{}, nil
	case 1:
		return publishers[0], nil
	default:
		return Fanout(publishers), nil
	}
}
