package eventbus

import (
	"context"
	"testing"
	"time"

	"go-shortlink/internal/domain/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/suite"
)

type EventBusTestSuite struct {
	suite.Suite
	sut *EventBus
}

func TestEventBusTestSuite(t *testing.T) {
	suite.Run(t, new(EventBusTestSuite))
}

func (s *EventBusTestSuite) SetupTest() {
	s.sut = NewEventBus(watermill.NopLogger{})
}

func (s *EventBusTestSuite) TearDownTest() {
	if s.sut != nil {
		_ = s.sut.Close()
	}
}

func testSnapshot() event.LinkSnapshot {
	now := time.Now().UTC()
	return event.LinkSnapshot{
		ID:          "link-1",
		ShortCode:   "aB3xY9",
		OriginalURL: "https://example.com",
		Clicks:      2,
		CreatedAt:   now,
		ExpiresAt:   now.Add(10 * time.Minute),
	}
}

func (s *EventBusTestSuite) TestPublishWithoutSubscribers() {
	err := s.sut.Publish(context.Background(), event.NewLinkCreated(testSnapshot()))

	s.NoError(err)
}

func (s *EventBusTestSuite) TestPublishCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.sut.Publish(ctx, event.NewLinkCreated(testSnapshot()))

	s.ErrorIs(err, context.Canceled)
}

func (s *EventBusTestSuite) TestPublishAfterClose() {
	s.Require().NoError(s.sut.Close())

	err := s.sut.Publish(context.Background(), event.NewLinkCreated(testSnapshot()))

	s.Error(err)
	s.sut = nil
}

func (s *EventBusTestSuite) TestNewMessage_Headers() {
	evt := event.NewLinkClicked(testSnapshot())

	msg, err := NewMessage(evt)

	s.Require().NoError(err)
	s.Equal(evt.EventID(), msg.UUID)
	s.Equal(event.LinkClickedName, msg.Metadata.Get("event_name"))
	s.Equal("link-1", msg.Metadata.Get("link_id"))
	s.Equal(evt.OccurredAt().UTC().Format(time.RFC3339Nano), msg.Metadata.Get("occurred_at"))
}

func (s *EventBusTestSuite) TestParseEnvelope_DecodesClickedLink() {
	evt := event.NewLinkClicked(testSnapshot())
	msg, err := NewMessage(evt)
	s.Require().NoError(err)

	envelope, err := ParseEnvelope(msg)

	s.Require().NoError(err)
	s.Equal(evt.EventID(), envelope.EventID)
	s.Equal(event.LinkClickedName, envelope.EventName)
	s.Equal("link-1", envelope.AggregateID)
	s.True(evt.OccurredAt().Equal(envelope.OccurredAt))

	var decoded event.LinkClicked
	s.Require().NoError(envelope.Decode(&decoded))
	s.Equal(int64(2), decoded.Link.Clicks)
	s.Equal("aB3xY9", decoded.Link.ShortCode)
}

func (s *EventBusTestSuite) TestParseEnvelope_Malformed() {
	valid := func() *message.Message {
		msg, err := NewMessage(event.NewLinkDeleted("link-1", "aB3xY9"))
		s.Require().NoError(err)
		return msg
	}

	tests := []struct {
		name   string
		mutate func(msg *message.Message)
	}{
		{name: "no event name", mutate: func(msg *message.Message) { msg.Metadata.Set("event_name", "") }},
		{name: "bad timestamp", mutate: func(msg *message.Message) { msg.Metadata.Set("occurred_at", "yesterday") }},
		{name: "payload not json", mutate: func(msg *message.Message) { msg.Payload = []byte("link deleted") }},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			msg := valid()
			tt.mutate(msg)

			_, err := ParseEnvelope(msg)

			s.ErrorIs(err, ErrMalformedMessage)
		})
	}
}

func (s *EventBusTestSuite) TestPublishAndSubscribe() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	messages, err := s.sut.Subscriber().Subscribe(ctx, LinkEventsTopic)
	s.Require().NoError(err)

	err = s.sut.Publish(ctx, event.NewLinkDeleted("link-9", "zzz999"))
	s.Require().NoError(err)

	select {
	case msg := <-messages:
		envelope, err := ParseEnvelope(msg)
		s.NoError(err)
		s.Equal(event.LinkDeletedName, envelope.EventName)
		s.Equal("link-9", envelope.AggregateID)
		msg.Ack()
	case <-ctx.Done():
		s.Fail("timeout waiting for message")
	}
}
