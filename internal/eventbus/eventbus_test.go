package eventbus

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"websearch/internal/domain"
)

func TestMain(m *testing.M) {
	log.Logger = zerolog.Nop()
	os.Exit(m.Run())
}

type recorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *recorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) snapshot() []DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]DomainEvent(nil), r.events...)
}

func TestPublishDeliversToSubscribersInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(EventSearchSubmitted, rec.handle)

	for i := uint64(1); i <= 3; i++ {
		b.Publish(SearchSubmittedEvent{Generation: i, Query: domain.NewSearchQuery("cats", 1)})
	}

	require.Eventually(t, func() bool { return rec.count() == 3 }, time.Second, 5*time.Millisecond)
	for i, e := range rec.snapshot() {
		assert.Equal(t, uint64(i+1), e.(SearchSubmittedEvent).Generation)
	}
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	defer b.Close()

	failed := &recorder{}
	completed := &recorder{}
	b.Subscribe(EventSearchFailed, failed.handle)
	b.Subscribe(EventSearchCompleted, completed.handle)

	b.Publish(SearchCompletedEvent{Generation: 1, ItemCount: 2})

	require.Eventually(t, func() bool { return completed.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, failed.count())
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	kept := &recorder{}
	dropped := &recorder{}
	b.Subscribe(EventPageChanged, kept.handle)
	unsubscribe := b.Subscribe(EventPageChanged, dropped.handle)
	unsubscribe()

	b.Publish(PageChangedEvent{From: 1, To: 2})

	require.Eventually(t, func() bool { return kept.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, dropped.count())
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	rec := &recorder{}
	b.Subscribe(EventValidationFailed, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventValidationFailed, rec.handle)

	b.Publish(ValidationFailedEvent{})
	b.Publish(ValidationFailedEvent{})

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	rec := &recorder{}
	b.Subscribe(EventValidationFailed, rec.handle)
	b.Close()
	b.Close()

	b.Publish(ValidationFailedEvent{})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, rec.count())
}
