// Package batch evaluates many formula requests concurrently.
//
// A Runner dispatches requests to an Evaluator (normally the catalog) with
// at most Workers evaluations in flight and returns one Outcome per request
// in request order:
//
//	requests, err := batch.LoadFile("jobs.yaml")
//	runner := batch.NewRunner(nil, batch.Config{Workers: 4})
//	outcomes, err := runner.Run(ctx, requests)
//	exit := batch.Summarize(outcomes).ExitCode()
package batch
