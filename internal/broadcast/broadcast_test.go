package broadcast

import (
	"testing"
	"time"
)

func TestSubscribeReceivesSentValues(t *testing.T) {
	b := New[int]()
	_, ch := b.Subscribe()

	b.Send(42)

	select {
	case v := <-ch:
		if v != 42 {
			t.Fatalf("expected 42, got %d", v)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast value")
	}
}

func TestSendBeforeSubscribeIsNotReplayed(t *testing.T) {
	b := New[int]()
	b.Send(1)
	_, ch := b.Subscribe()
	b.Send(2)

	v := <-ch
	if v != 2 {
		t.Fatalf("expected only post-subscription value 2, got %d", v)
	}
}

func TestLaggingSubscriberDoesNotBlockSend(t *testing.T) {
	b := New[int]()
	_, ch := b.Subscribe()

	for i := 0; i < Capacity+10; i++ {
		b.Send(i) // must never block even though ch is never drained
	}

	if len(ch) != Capacity {
		t.Fatalf("expected channel to be saturated at capacity %d, got %d", Capacity, len(ch))
	}
}

func TestCloseEndsAllSubscriberStreams(t *testing.T) {
	b := New[int]()
	_, ch1 := b.Subscribe()
	_, ch2 := b.Subscribe()

	b.Close()

	if _, ok := <-ch1; ok {
		t.Fatal("expected ch1 to be closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatal("expected ch2 to be closed")
	}

	// Send and Subscribe after Close must not panic.
	b.Send(1)
	id, ch3 := b.Subscribe()
	if id != -1 {
		t.Fatalf("expected sentinel id -1 for post-close subscribe, got %d", id)
	}
	if _, ok := <-ch3; ok {
		t.Fatal("expected post-close subscribe channel to be already closed")
	}
}

func TestNotifierWakesAllWaiters(t *testing.T) {
	n := NewNotifier()
	w1 := n.Wait()
	w2 := n.Wait()

	done := make(chan struct{})
	go func() {
		<-w1
		<-w2
		close(done)
	}()

	n.Notify()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notifier to wake both waiters")
	}
}

func TestNotifierGenerationsAreIndependent(t *testing.T) {
	n := NewNotifier()
	first := n.Wait()
	n.Notify()
	second := n.Wait()

	select {
	case <-first:
	default:
		t.Fatal("expected first generation to already be closed")
	}

	select {
	case <-second:
		t.Fatal("expected second generation to still be open")
	default:
	}
}
