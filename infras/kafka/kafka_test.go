package kafka_test

import (
	"testing"

	"github.com/NikQuila/website-gocar-sub000/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
}

func TestMessageRoundTrip(t *testing.T) {
	msg := kafka.Message{Key: "appointment-1", Value: payload{To: []string{"ana@b.cl"}, Subject: "Cancelled"}}

	raw, err := msg.ToKafkaMessage()
	assert.NoError(t, err)
	assert.Equal(t, []byte("appointment-1"), raw.Key)

	decoded, err := kafka.Decode[payload](raw)
	assert.NoError(t, err)
	assert.Equal(t, msg.Value, decoded)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := kafka.Decode[payload](kafkaGo.Message{Value: []byte("{not json")})

	assert.Error(t, err)
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}
