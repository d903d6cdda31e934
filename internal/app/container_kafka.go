package app

import (
	"go.uber.org/dig"

	"shegamart/internal/config"
	"shegamart/internal/logx"
	"shegamart/internal/service/delivery"
	"shegamart/internal/service/orders"
	"shegamart/internal/transport/kafka"
)

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(svc *delivery.Service, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(svc, logger)
		},
		func(cfg *config.Config, p *orders.Processor, logger logx.Logger) (*kafka.Consumer, error) {
			k := cfg.Kafka
			return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.Topic, p.Handle)
		},
	)
}
