package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Minio          *minio.Client
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App     App
		FHIR    FHIR
		Events  Events
		Archive Archive
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		RateLimitBlockTimeInSecond int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		UseSSL     bool
		BucketName string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	FHIR struct {
		// DocumentCacheTTLInSecond bounds how long a stored document may
		// be served from the redis read-through cache.
		DocumentCacheTTLInSecond int
	}

	Events struct {
		ResourceQueue string
	}

	Archive struct {
		Enabled bool
	}
)
