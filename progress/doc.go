// Package progress tracks long-running server operations such as index
// builds and bulk loads.
//
// A Monitor is passive configuration plus a notification callback. The loop
// that polls the server belongs to the caller; Wait is the stock
// implementation of that loop:
//
//	m := progress.NewMonitor(
//	    progress.WithCheckTimeout(120),
//	    progress.WithCheckInterval(250),
//	    progress.WithCallback(func(p *progress.Progress) {
//	        fmt.Println("index build", p)
//	    }),
//	)
//	err := progress.Wait(ctx, m, func(ctx context.Context) (progress.Progress, error) {
//	    return client.IndexBuildProgress(ctx, "docs")
//	})
//	if errors.Is(err, progress.ErrTimeout) {
//	    // still running server-side
//	}
package progress
