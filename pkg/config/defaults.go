package config

import "time"

const (
	DefaultMongoURI          = "mongodb://0.0.0.0:27017"
	DefaultMongoDatabaseName = "mongoLab07"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultMongoReadTimeout  = 10 * time.Second
	DefaultMongoWriteTimeout = 10 * time.Second

	DefaultPort     = "3000"
	DefaultLogLevel = "info"

	DefaultRequestTimeout  = 30 * time.Second
	DefaultMultipartMemory = 32 << 20 // 32MB in memory, the rest spills to temp files

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
