package kafka_config

import "time"

const (
	// Empty means events are disabled.
	DefaultKafkaBrokers = ""
	DefaultEventsTopic  = "turismo.events"

	DefaultProducerMaxAttempts  = 3
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"
	DefaultProducerAsync        = false
	DefaultPublishTimeout       = 2 * time.Second
)
