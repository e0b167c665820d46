package events

import (
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/propagation"
)

// headerCarrier lets the otel propagator write trace context into kafka
// message headers.
type headerCarrier []kafka.Header

var _ propagation.TextMapCarrier = (*headerCarrier)(nil)

func (c *headerCarrier) Get(key string) string {
	for _, header := range *c {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i, header := range *c {
		if header.Key == key {
			(*c)[i].Value = []byte(value)
			return
		}
	}

	*c = append(*c, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, header := range *c {
		keys = append(keys, header.Key)
	}

	return keys
}
