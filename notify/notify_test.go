package notify

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	ev := Event{ID: "fb-1", Sentiment: "positive", Language: "en", CreatedAt: time.Now()}
	hub.Publish(ev)

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case got := <-ch:
			if got.ID != "fb-1" {
				t.Errorf("received event %q, want fb-1", got.ID)
			}
		default:
			t.Error("subscriber did not receive the event")
		}
	}
}

func TestPublishWithNoSubscribersDoesNotBlock(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		hub.Publish(Event{ID: "fb-1"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no subscribers")
	}
}

func TestPublishDropsWhenSubscriberBufferFull(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	// Fill the buffer and then some; the extra publishes must be dropped,
	// not block the publisher.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+5; i++ {
			hub.Publish(Event{ID: "fb"})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber buffer")
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("subscriber holds %d events, want the buffer size %d", got, subscriberBuffer)
	}
}

func TestCancelClosesChannelAndIsIdempotent(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	cancel()
	cancel()

	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}

	// Publishing after cancel must not panic on the closed channel.
	hub.Publish(Event{ID: "fb-2"})
}
