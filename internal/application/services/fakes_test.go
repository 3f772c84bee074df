package services

import (
	"context"
	"errors"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"prestamos-api/internal/infrastructure/googleauth"
	"prestamos-api/internal/infrastructure/mq"
)

// fakeMQ satisfies ports.RabbitMQ with a buffered channel so services
// can publish without a broker.
type fakeMQ struct {
	in chan mq.Event
}

func newFakeMQ() *fakeMQ {
	return &fakeMQ{in: make(chan mq.Event, 16)}
}

func (f *fakeMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeMQ) Init() error                                   { return nil }
func (f *fakeMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeMQ) GetConn() *amqp091.Connection                  { return nil }

type fakeVerifier struct {
	VerifyFunc func(ctx context.Context, token string) (*googleauth.Claims, error)
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*googleauth.Claims, error) {
	if f.VerifyFunc == nil {
		return nil, errors.New("not used")
	}
	return f.VerifyFunc(ctx, token)
}

// newTestCounter avoids promauto so repeated test runs never collide on
// the default registry.
func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_counters"},
		[]string{"result"},
	)
}

func newMockDB(t interface {
	Fatalf(format string, args ...any)
	Cleanup(func())
}) pgxmock.PgxPoolIface {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}
