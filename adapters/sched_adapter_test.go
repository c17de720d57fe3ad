// File: adapters/sched_adapter_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters_test

import (
	"errors"
	"testing"
	"time"

	"github.com/momentics/hioload-futures/adapters"
	"github.com/momentics/hioload-futures/api"
	"github.com/momentics/hioload-futures/core/sched"
	"github.com/momentics/hioload-futures/fake"
)

func TestDeferredFiresAfterDelay(t *testing.T) {
	tk := sched.NewTicker()
	d := adapters.NewDeferred(tk, 10*time.Millisecond)

	rec := &fake.Recorder{}
	if err := d.Bind(rec.Callback(), rec.Errback()); err != nil {
		t.Fatal(err)
	}

	tk.Advance(5 * time.Millisecond)
	if len(rec.Results) != 0 {
		t.Fatal("fired before the delay elapsed")
	}
	tk.Advance(5 * time.Millisecond)
	if len(rec.Results) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(rec.Results))
	}
	if rec.Results[0].Value != nil || rec.Results[0].Err != nil {
		t.Errorf("deferred delivery = %+v, want nil payload", rec.Results[0])
	}
}

func TestDeferredDoubleBindFails(t *testing.T) {
	d := adapters.NewDeferred(sched.NewTicker(), time.Second)
	if err := d.Bind(func(any) {}, nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Bind(func(any) {}, nil); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("second bind = %v, want ErrInvalidState", err)
	}
}

func TestDeferredRejectsNilCallback(t *testing.T) {
	d := adapters.NewDeferred(sched.NewTicker(), time.Second)
	if err := d.Bind(nil, nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Bind(nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestDeferredNextTickUsesSchedulerTurn(t *testing.T) {
	fs := &fake.Scheduler{}
	d := adapters.NewNextTick(fs)

	rec := &fake.Recorder{}
	if err := d.Bind(rec.Callback(), nil); err != nil {
		t.Fatal(err)
	}
	if len(fs.Jobs) != 1 || !fs.Jobs[0].NextTick {
		t.Fatalf("jobs = %+v, want one next-tick job", fs.Jobs)
	}

	fs.FireAll()
	if len(rec.Results) != 1 {
		t.Errorf("deliveries = %d, want 1", len(rec.Results))
	}
}

func TestDeferredPassesDelayThrough(t *testing.T) {
	fs := &fake.Scheduler{}
	d := adapters.NewDeferred(fs, 42*time.Millisecond)
	if err := d.Bind(func(any) {}, nil); err != nil {
		t.Fatal(err)
	}
	if len(fs.Jobs) != 1 || fs.Jobs[0].Delay != 42*time.Millisecond {
		t.Errorf("jobs = %+v, want one job with 42ms delay", fs.Jobs)
	}
}

func TestDeferredScheduleFailureRoutesToErrback(t *testing.T) {
	boom := errors.New("scheduler down")
	fs := &fake.Scheduler{ScheduleErr: boom}
	d := adapters.NewDeferred(fs, time.Second)

	rec := &fake.Recorder{}
	err := d.Bind(rec.Callback(), rec.Errback())
	if !errors.Is(err, boom) {
		t.Fatalf("Bind = %v, want scheduler error", err)
	}
	got := rec.Errors()
	if len(got) != 1 || !errors.Is(got[0], boom) {
		t.Errorf("errback got %v, want [scheduler down]", got)
	}

	// a failed bind leaves the adapter bindable
	fs.ScheduleErr = nil
	if err := d.Bind(rec.Callback(), nil); err != nil {
		t.Errorf("rebind after failure = %v, want nil", err)
	}
}

func TestDeferredCancel(t *testing.T) {
	tk := sched.NewTicker()
	d := adapters.NewDeferred(tk, time.Millisecond)

	if err := d.Cancel(); !errors.Is(err, api.ErrInvalidState) {
		t.Errorf("cancel before bind = %v, want ErrInvalidState", err)
	}

	fired := false
	if err := d.Bind(func(any) { fired = true }, nil); err != nil {
		t.Fatal(err)
	}
	if err := d.Cancel(); err != nil {
		t.Fatal(err)
	}
	tk.Advance(time.Second)
	if fired {
		t.Error("canceled deferred fired")
	}
}
