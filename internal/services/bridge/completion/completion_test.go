package completion

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	perr "snapbridge/internal/platform/errors"
	kit "snapbridge/internal/platform/testkit"
	"snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/translate"

	"golang.org/x/sync/errgroup"
)

func collect() (Reply, *[]domain.Response, *sync.Mutex) {
	var mu sync.Mutex
	var got []domain.Response
	return func(r domain.Response) {
		mu.Lock()
		got = append(got, r)
		mu.Unlock()
	}, &got, &mu
}

func TestSucceed_FirstWins(t *testing.T) {
	reply, got, _ := collect()
	c := New(context.Background(), translate.Login, reply)

	if !c.Succeed(domain.LoginSuccess) {
		t.Fatal("first completion should emit")
	}
	if c.Fail(translate.ProviderFailure{Err: errors.New("late")}) {
		t.Fatal("second completion should be discarded")
	}
	if c.Succeed("again") {
		t.Fatal("third completion should be discarded")
	}
	if len(*got) != 1 || (*got)[0].Value != domain.LoginSuccess {
		t.Fatalf("got %+v", *got)
	}
	if c.dups.Load() != 2 || !c.done.Load() {
		t.Fatalf("duplicates = %d done = %v", c.dups.Load(), c.done.Load())
	}
}

func TestFail_Translates(t *testing.T) {
	reply, got, _ := collect()
	c := New(context.Background(), translate.FetchProfile, reply)
	c.Fail(translate.ProviderFailure{Unauthenticated: true})

	r := (*got)[0]
	if r.Status != domain.StatusFailure || r.Code() != translate.CodeGetUser || r.Message() != translate.MsgNotLoggedIn {
		t.Fatalf("got %+v (%s %s)", r, r.Code(), r.Message())
	}
	if !perr.IsCode(r.Err, perr.ErrorCodeUnauthenticated) {
		t.Fatalf("code = %v", perr.CodeOf(r.Err))
	}
}

func TestReject_PassesThrough(t *testing.T) {
	reply, got, _ := collect()
	c := New(context.Background(), translate.SendMedia, reply)
	in := translate.Args(translate.SendMedia, perr.InvalidArgf("bad"))
	c.Reject(in)
	if (*got)[0].Err != in {
		t.Fatalf("expected the same error back")
	}
}

func TestConcurrentCompletions_ExactlyOnce(t *testing.T) {
	for round := 0; round < 20; round++ {
		var calls atomic.Int32
		c := New(context.Background(), translate.VerifyPhone, func(domain.Response) { calls.Add(1) })

		var g errgroup.Group
		for i := 0; i < 16; i++ {
			i := i
			g.Go(func() error {
				if i%2 == 0 {
					c.Succeed([]any{"p", "v"})
				} else {
					c.Fail(translate.ProviderFailure{Err: errors.New("x")})
				}
				return nil
			})
		}
		_ = g.Wait()

		if calls.Load() != 1 {
			t.Fatalf("round %d: reply called %d times", round, calls.Load())
		}
		if c.dups.Load() != 15 {
			t.Fatalf("round %d: duplicates = %d", round, c.dups.Load())
		}
	}
}

func TestDiscarded_ProcessWideCounterGrows(t *testing.T) {
	before := Discarded()
	c := New(context.Background(), translate.Logout, func(domain.Response) {})
	c.Succeed(domain.LogoutSuccess)
	c.Succeed(domain.LogoutSuccess)
	if Discarded() < before+1 {
		t.Fatalf("discarded did not grow: %d -> %d", before, Discarded())
	}
}

func TestPanickingReplyStillCountsAsEmitted(t *testing.T) {
	c := New(context.Background(), translate.Login, func(domain.Response) { panic("host went away") })
	kit.MustPanic(t, func() { c.Succeed("x") })
	if c.Succeed("y") {
		t.Fatal("completion after a panicking reply must be discarded")
	}
}

func TestFailAfterCompletion_DiscardsWithoutReply(t *testing.T) {
	var calls atomic.Int32
	c := New(context.Background(), translate.FetchProfile, func(domain.Response) { calls.Add(1) })
	c.Succeed([]any{"id", "name", nil})

	before := Discarded()
	if c.Fail(translate.ProviderFailure{Unauthenticated: true}) {
		t.Fatal("failure after completion should be discarded")
	}
	if calls.Load() != 1 || c.dups.Load() != 1 || Discarded() < before+1 {
		t.Fatalf("calls = %d dups = %d discarded %d -> %d", calls.Load(), c.dups.Load(), before, Discarded())
	}
}
