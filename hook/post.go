package hook

import (
	"time"

	"hookwire/event"
)

// Post injects one synthetic event into the platform input stream. The
// engine assigns the timestamp; the event's own Time is ignored. Control
// events are rejected with event.NotPostableError.
//
// Posting works whether or not the pipeline is running, but only a
// running pipeline can observe (and synthetic-tag) the result.
func Post(ev event.Event) error {
	return postEvent(&ev)
}

// PostAll injects the events in order. Admission is all-or-nothing: if
// any event is not postable, none are posted.
func PostAll(events ...event.Event) error {
	for i := range events {
		if err := events[i].Postable(); err != nil {
			return err
		}
	}
	for i := range events {
		postEvent(&events[i])
	}
	return nil
}

// PostPair injects a press immediately followed by its release.
func PostPair(p event.Pair) error {
	return PostPairDelayed(p, 0)
}

// PostPairDelayed injects the press, sleeps for delay, then injects the
// release. The caller blocks for the whole duration; there is no way to
// cancel the release once the press is out.
func PostPairDelayed(p event.Pair, delay time.Duration) error {
	if err := p.Validate(); err != nil {
		return err
	}
	postEvent(&p.Press)
	if delay > 0 {
		time.Sleep(delay)
	}
	postEvent(&p.Release)
	return nil
}

// PostPairDelayedAsync injects the press synchronously, then hands the
// sleep and the release to a background worker and returns. Admission
// errors surface here; nothing after admission can fail.
func PostPairDelayedAsync(p event.Pair, delay time.Duration) error {
	if err := p.Validate(); err != nil {
		return err
	}
	postEvent(&p.Press)
	asyncPool.submit(func() {
		if delay > 0 {
			time.Sleep(delay)
		}
		postEvent(&p.Release)
	})
	return nil
}

// PostSequence injects every pair's press in order, then every release
// in order, modelling a chord: all keys go down, all keys come up.
// Admission is atomic: one invalid pair rejects the whole sequence
// before anything is posted.
func PostSequence(pairs []event.Pair) error {
	return PostSequenceDelayed(pairs, 0)
}

// PostSequenceDelayed is PostSequence with a hold between the last press
// and the first release.
func PostSequenceDelayed(pairs []event.Pair, delay time.Duration) error {
	if err := event.ValidateSequence(pairs); err != nil {
		return err
	}
	postSequence(pairs, delay)
	return nil
}

// PostSequenceDelayedAsync validates the sequence, then runs the delayed
// post on a background worker.
func PostSequenceDelayedAsync(pairs []event.Pair, delay time.Duration) error {
	if err := event.ValidateSequence(pairs); err != nil {
		return err
	}
	seq := make([]event.Pair, len(pairs))
	copy(seq, pairs)
	asyncPool.submit(func() {
		postSequence(seq, delay)
	})
	return nil
}

func postSequence(pairs []event.Pair, delay time.Duration) {
	for i := range pairs {
		postEvent(&pairs[i].Press)
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	for i := range pairs {
		postEvent(&pairs[i].Release)
	}
}
