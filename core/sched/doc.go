// File: core/sched/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package sched holds the deferred-execution side of hioload-futures:
// the Sleep and NextTick placeholder binders kept for contract
// compatibility, and Ticker, a deterministic single-threaded scheduler
// satisfying api.Scheduler for reactor-less composition and tests.
package sched
