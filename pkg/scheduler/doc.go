// Package scheduler implements a fixed-size worker pool returning futures.
//
// The library aggregation fans out two upstream calls per game (schema and
// player state). Running them through the scheduler bounds the number of
// concurrent requests against the backend proxy regardless of library size.
//
// # Architecture Overview
//
//	┌──────────────────────────────────────────────────────────────┐
//	│                          Scheduler                           │
//	│                                                              │
//	│   ┌──────────┐      ┌──────────┐      ┌──────────┐           │
//	│   │ Worker 1 │      │ Worker 2 │      │ Worker N │           │
//	│   └──────────┘      └──────────┘      └──────────┘           │
//	│        ▲                 ▲                 ▲                 │
//	│        └─────────────────┼─────────────────┘                 │
//	│                    ┌─────┴──────┐                            │
//	│                    │ dispatch() │                            │
//	│                    └─────┬──────┘                            │
//	│   ┌──────────────────────┴───────────────────────────┐       │
//	│   │ Work Queue  [schema:10] [state:10] [schema:20] … │       │
//	│   └──────────────────────────────────────────────────┘       │
//	│                          ▲                                   │
//	│                     AddWork(fn)                              │
//	└──────────────────────────────────────────────────────────────┘
//
// The event loop reacts to three signals: new work (queue it, dispatch),
// a worker finished (return it to the pool, dispatch) and close (wait for
// in-flight work, exit). dispatch pairs idle workers with queued work until
// one of the two queues is empty.
//
// # Futures
//
// AddWork returns immediately with a Future:
//
//   - C() yields exactly one Result{Data, Err}
//   - Stop() cancels the context passed to the work function
//   - Await(ctx) joins the result or gives up (and cancels) when ctx ends
//
// A panicking work function does not take the pool down; the panic is logged
// and delivered as Result.Err.
//
// # Cancellation
//
// Each work request runs under a context derived from the scheduler's main
// context. Future.Stop cancels one request, Close cancels all of them, waits
// for in-flight workers and is idempotent. AddWork after Close returns a
// future already holding context.Canceled.
//
// # Usage Example
//
//	sched := scheduler.NewScheduler(8)
//	defer sched.Close()
//
//	schemas := make(map[int]*scheduler.Future[scheduler.Result[any]], len(games))
//	for _, g := range games {
//	    appID := g.AppID
//	    schemas[appID] = sched.AddWork(func(ctx context.Context) (any, error) {
//	        return client.GetSchema(ctx, creds, appID)
//	    })
//	}
//
//	for appID, f := range schemas {
//	    result, err := f.Await(ctx)
//	    if err != nil {
//	        return err // caller gave up
//	    }
//	    if result.Err != nil {
//	        // degrade this game only
//	    }
//	}
package scheduler
