package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"bank-ledger-system/config"
	"bank-ledger-system/internal/logger"
	"bank-ledger-system/internal/models"
)

type ProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg *config.Config) (Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Log.Info("Kafka producer created successfully")
	return &ProducerImpl{
		producer: producer,
		topic:    cfg.Kafka.LedgerTopic,
	}, nil
}

// SendLedgerEvent отправляет событие записи журнала в топик.
// Ключ сообщения — id счета, чтобы события одного счета попадали
// в одну партицию и сохраняли порядок.
func (p *ProducerImpl) SendLedgerEvent(event *models.KafkaLedgerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(fmt.Sprintf("%d", event.Data.AccountID)),
		Value:     sarama.StringEncoder(data),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Log.Debug("ledger event sent",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("event_id", event.EventID),
	)
	return nil
}

func (p *ProducerImpl) Close() error {
	return p.producer.Close()
}
