package sink

import (
	"context"

	kafka "github.com/segmentio/kafka-go"
)

// KafkaConfig configures the Kafka sink, grounded on the teacher's
// plugins/reporter/kafka reporter connection settings.
type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// KafkaSink forwards every record as a single Kafka message, keyless,
// letting the writer's balancer spread load across partitions.
type KafkaSink struct {
	w *kafka.Writer
}

// NewKafkaSink constructs a sink that produces to cfg.Topic on cfg.Brokers.
func NewKafkaSink(cfg KafkaConfig) *KafkaSink {
	return &KafkaSink{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Write produces record as a single message.
func (s *KafkaSink) Write(ctx context.Context, record string) error {
	return s.w.WriteMessages(ctx, kafka.Message{Value: []byte(record)})
}

// Close flushes and closes the underlying writer.
func (s *KafkaSink) Close() error {
	return s.w.Close()
}
