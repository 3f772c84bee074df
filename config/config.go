package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type (
	APP struct {
		Name         string
		Host         string
		Port         string
		Env          string
		JWTSecret    string
		JWTAlg       string
		TokenTTLMins int
	}
	Auth struct {
		GoogleClientID     string
		GoogleOnly         bool
		AllowedEmailDomain string
		RejectDisposable   bool
		CheckEmailMX       bool
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Redis struct {
		Addr     string
		Password string
	}

	Config struct {
		App   APP
		Auth  Auth
		DB    DB
		MQ    MQ
		Redis Redis
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func Load() Config {
	app := APP{
		Name:         getEnv("SERVICE_NAME", "prestamosapi"),
		Host:         getEnv("SERVICE_HOST", ""),
		Port:         getEnv("SERVICE_PORT", "8080"),
		Env:          getEnv("SERVICE_ENV", ""),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTAlg:       getEnv("JWT_ALG", "HS256"),
		TokenTTLMins: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
	}
	auth := Auth{
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleOnly:         getEnvBool("AUTH_GOOGLE_ONLY", false),
		AllowedEmailDomain: strings.ToLower(getEnv("ALLOWED_EMAIL_DOMAIN", "")),
		RejectDisposable:   getEnvBool("REJECT_DISPOSABLE_EMAIL", true),
		CheckEmailMX:       getEnvBool("CHECK_EMAIL_MX", false),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "auditoria"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "auditoria-eventos"),
	}
	rd := Redis{
		Addr:     getEnv("REDIS_ADDR", ""),
		Password: getEnv("REDIS_PASSWORD", ""),
	}

	return Config{
		App:   app,
		Auth:  auth,
		DB:    db,
		MQ:    mq,
		Redis: rd,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
