package jetstream_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/messaging"
	"github.com/cfd-platform/cfd-backend/internal/mocks"
	"github.com/cfd-platform/cfd-backend/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testPublisherMocks contains all the mocks needed for testing the publisher
type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "DIVIDENDS",
		MaxReconnects:  10,
		ReconnectWait:  time.Second,
		ConnectionName: "cfd-api",
	}
}

func connect(t *testing.T, m *testPublisherMocks) messaging.Publisher {
	m.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) (natsjs.Stream, error) {
			assert.Equal(t, "DIVIDENDS", cfg.Name)
			assert.Equal(t, []string{"events.dividends.>"}, cfg.Subjects)
			return nil, nil
		})
	m.conn.EXPECT().ConnectedUrl().Return("nats://localhost:4222")

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), m.natsJS, m.json)
	require.NoError(t, err)
	return p
}

func TestNewPublisher_ConnectError(t *testing.T) {
	m := setupTestPublisher(t)

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), m.natsJS, m.json)
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNewPublisher_StreamError(t *testing.T) {
	m := setupTestPublisher(t)

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil, errors.New("insufficient resources"))
	m.conn.EXPECT().Close()

	p, err := jetstream.NewPublisher(context.Background(), testConfig(), m.natsJS, m.json)
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestPublisher_PublishEvent(t *testing.T) {
	m := setupTestPublisher(t)
	p := connect(t, m)

	event := &domain.DividendEvent{
		ID:             "01J2ZC8N4V4K6S4T2H3C7QX9F1",
		EventType:      domain.EventTypeDividendClaimed,
		DistributionID: "dist-1",
		WalletAddress:  "0x3333333333333333333333333333333333333333",
		Amount:         "10",
		Currency:       domain.DIVIDEND_CURRENCY,
	}
	payload := []byte(`{"id":"01J2ZC8N4V4K6S4T2H3C7QX9F1"}`)

	m.json.EXPECT().Marshal(event).Return(payload, nil)
	m.js.EXPECT().Publish(gomock.Any(), "events.dividends.dividend.claimed", payload, gomock.Any()).
		Return(&natsjs.PubAck{Stream: "DIVIDENDS", Sequence: 1}, nil)

	assert.NoError(t, p.PublishEvent(context.Background(), event))

	m.conn.EXPECT().Close()
	p.Close()
}

func TestPublisher_PublishEvent_Errors(t *testing.T) {
	t.Run("marshal error", func(t *testing.T) {
		m := setupTestPublisher(t)
		p := connect(t, m)

		m.json.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))

		err := p.PublishEvent(context.Background(), &domain.DividendEvent{EventType: domain.EventTypeDistributionCreated})
		assert.Error(t, err)
	})

	t.Run("publish error", func(t *testing.T) {
		m := setupTestPublisher(t)
		p := connect(t, m)

		m.json.EXPECT().Marshal(gomock.Any()).Return([]byte(`{}`), nil)
		m.js.EXPECT().Publish(gomock.Any(), "events.dividends.distribution.created", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("nats: timeout"))

		err := p.PublishEvent(context.Background(), &domain.DividendEvent{EventType: domain.EventTypeDistributionCreated})
		assert.Error(t, err)
	})
}
