package commit_test

import (
	"slices"
	"testing"
	"time"

	"tfeditor/internal/commit"
	"tfeditor/internal/commit/committest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	got [][]int
}

func (r *recorder) emit(v []int) { r.got = append(r.got, v) }

func newCommitter(t *testing.T) (*commit.Committer[[]int], *committest.Clock, *recorder) {
	t.Helper()
	clock := &committest.Clock{}
	rec := &recorder{}
	c := commit.New(commit.DefaultDelay, clock, slices.Equal[[]int], rec.emit)
	return c, clock, rec
}

func TestEmitsAfterQuietPeriod(t *testing.T) {
	c, clock, rec := newCommitter(t)

	c.Push([]int{1})
	clock.Advance(249 * time.Millisecond)
	assert.Empty(t, rec.got)
	assert.True(t, c.Pending())

	clock.Advance(time.Millisecond)
	require.Len(t, rec.got, 1)
	assert.Equal(t, []int{1}, rec.got[0])
	assert.False(t, c.Pending())

	last, ok := c.Last()
	assert.True(t, ok)
	assert.Equal(t, []int{1}, last)
}

func TestPushRestartsTimer(t *testing.T) {
	c, clock, rec := newCommitter(t)

	for i := 0; i < 5; i++ {
		c.Push([]int{i})
		clock.Advance(200 * time.Millisecond)
	}
	assert.Empty(t, rec.got)
	assert.Equal(t, 1, clock.Active())

	clock.Advance(50 * time.Millisecond)
	require.Len(t, rec.got, 1)
	assert.Equal(t, []int{4}, rec.got[0])
}

func TestIdenticalCommitsEmitOnce(t *testing.T) {
	c, clock, rec := newCommitter(t)

	c.Push([]int{1, 2})
	clock.Advance(time.Second)
	c.Push([]int{1, 2})
	clock.Advance(time.Second)

	assert.Len(t, rec.got, 1)

	c.Push([]int{3})
	clock.Advance(time.Second)
	assert.Len(t, rec.got, 2)
}

func TestMarkEmittedSuppressesEcho(t *testing.T) {
	c, clock, rec := newCommitter(t)

	c.MarkEmitted([]int{7})
	c.Push([]int{7})
	clock.Advance(time.Second)
	assert.Empty(t, rec.got)
}

func TestFlush(t *testing.T) {
	c, clock, rec := newCommitter(t)

	c.Flush()
	assert.Empty(t, rec.got)

	c.Push([]int{9})
	c.Flush()
	require.Len(t, rec.got, 1)

	clock.Advance(time.Second)
	c.Flush()
	assert.Len(t, rec.got, 1)
}

func TestCloseCancelsPending(t *testing.T) {
	c, clock, rec := newCommitter(t)

	c.Push([]int{1})
	c.Close()
	clock.Advance(time.Second)
	assert.Empty(t, rec.got)

	c.Push([]int{2})
	c.Flush()
	clock.Advance(time.Second)
	assert.Empty(t, rec.got)
	assert.Zero(t, clock.Active())
}

func TestRealClock(t *testing.T) {
	done := make(chan []int, 1)
	c := commit.New(10*time.Millisecond, nil, slices.Equal[[]int], func(v []int) { done <- v })
	defer c.Close()

	c.Push([]int{42})
	select {
	case v := <-done:
		assert.Equal(t, []int{42}, v)
	case <-time.After(5 * time.Second):
		t.Fatal("no emission")
	}
}

func TestCancelDropsPending(t *testing.T) {
	c, clock, rec := newCommitter(t)

	c.Push([]int{1})
	c.Cancel()
	assert.False(t, c.Pending())
	clock.Advance(time.Second)
	assert.Empty(t, rec.got)

	c.Push([]int{2})
	clock.Advance(time.Second)
	assert.Len(t, rec.got, 1)
}
