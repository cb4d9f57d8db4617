package events

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("producer", func() {
	It("writes successfully", func() {
		w := newTestWriter()
		kp := NewEventProducer(w, WithOutputTopic("topic"))

		err := kp.Write(context.TODO(), "kind1", bytes.NewReader([]byte(`{"n":1}`)))
		Expect(err).To(BeNil())
		err = kp.Write(context.TODO(), "kind2", bytes.NewReader([]byte(`{"n":2}`)))
		Expect(err).To(BeNil())

		Eventually(w.Len).Should(Equal(2))
		events := w.Events()
		Expect(events[0].Type()).To(Equal("kind1"))
		Expect(events[1].Type()).To(Equal("kind2"))
		Expect(events[0].Source()).To(Equal(defaultSource))
		Expect(w.Topics()).To(ConsistOf("topic", "topic"))

		Expect(kp.Close()).To(Succeed())
		Expect(w.Closed()).To(BeTrue())
	})

	It("does not block writers while the consumer is busy", func() {
		w := newTestWriter()
		w.delay = 20 * time.Millisecond
		kp := NewEventProducer(w)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 20; i++ {
				_ = kp.Write(context.TODO(), OnboardingSkippedKind, bytes.NewReader([]byte("{}")))
			}
		}()
		Eventually(done).WithTimeout(200 * time.Millisecond).Should(BeClosed())

		Expect(kp.Close()).To(Succeed())
		Expect(w.Len()).To(Equal(20))
	})

	It("serializes onboarding events", func() {
		w := newTestWriter()
		kp := NewEventProducer(w)
		defer kp.Close()

		occurred := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		err := kp.WriteOnboarding(context.TODO(), OnboardingCompletedKind, OnboardingEvent{
			AccountID:  "acc",
			UserID:     "user",
			Status:     "completed",
			OccurredAt: occurred,
		})
		Expect(err).To(BeNil())

		Eventually(w.Len).Should(Equal(1))
		var got OnboardingEvent
		Expect(json.Unmarshal(w.Events()[0].Data(), &got)).To(Succeed())
		Expect(got.Status).To(Equal("completed"))
		Expect(got.OccurredAt.Equal(occurred)).To(BeTrue())
	})

	It("can be closed twice", func() {
		kp := NewEventProducer(newTestWriter())
		Expect(kp.Close()).To(Succeed())
		Expect(kp.Close()).To(Succeed())
	})
})

type testwriter struct {
	mu       sync.Mutex
	messages []cloudevents.Event
	topics   []string
	closed   bool
	delay    time.Duration
}

func newTestWriter() *testwriter {
	return &testwriter{}
}

func (t *testwriter) Write(ctx context.Context, topic string, e cloudevents.Event) error {
	if t.delay > 0 {
		time.Sleep(t.delay)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, e)
	t.topics = append(t.topics, topic)
	return nil
}

func (t *testwriter) Close(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

func (t *testwriter) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

func (t *testwriter) Events() []cloudevents.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]cloudevents.Event(nil), t.messages...)
}

func (t *testwriter) Topics() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.topics...)
}

func (t *testwriter) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}
