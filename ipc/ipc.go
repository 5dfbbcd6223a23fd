// Package ipc carries jogd's command and telemetry messages over shared
// memory message queues.
package ipc

import (
	"encoding/json"

	"github.com/pfeiferj/gomsgq"
	"github.com/pkg/errors"
	"pfeifer.dev/jogd/settings"
)

// Queue names. Commands flow in on JogIn, telemetry flows out on JogOut.
const (
	JogIn  = "jogIn"
	JogOut = "jogOut"
)

type Publisher[T any] struct {
	Pub gomsgq.MsgqPublisher
}

func (p *Publisher[T]) Send(obj T) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return errors.Wrap(err, "could not marshal message")
	}
	p.Pub.Send(b)
	return nil
}

func NewPublisher[T any](name string) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(err)
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = pub
	return publisher
}

type Subscriber[T any] struct {
	Sub gomsgq.MsgqSubscriber
}

func (s *Subscriber[T]) Read() (obj T, success bool) {
	data := s.Sub.Read()
	if len(data) == 0 {
		return obj, false
	}
	err := json.Unmarshal(data, &obj)
	if err != nil {
		return obj, false
	}
	return obj, true
}

func NewSubscriber[T any](name string, conflate bool) (subscriber Subscriber[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, settings.DEFAULT_SEGMENT_SIZE)
	if err != nil {
		panic(err)
	}
	sub := gomsgq.MsgqSubscriber{}
	sub.Conflate = conflate
	sub.Init(msgq)

	subscriber.Sub = sub
	return subscriber
}
