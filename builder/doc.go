// Package builder provides deterministic topology generators that emit
// []core.Record fixtures for the search engine, the exact solver, the
// benchmarks and the CLI generate command.
//
// Every constructor emits moves in both directions, in a stable documented
// order. Node rates come from a RateFn (constant, uniform or sparse) and can
// be pinned by name with WithRates. Stochastic constructors and policies use
// the RNG installed by WithSeed or WithRand, so equal seeds give equal records.
//
//	recs, err := builder.BuildRecords(
//	    []builder.BuilderOption{
//	        builder.WithSeed(7),
//	        builder.WithPairIDs(),
//	        builder.WithRateFn(builder.SparseRateFn(0.4, 1, 25)),
//	        builder.WithRates(map[string]int{"AA": 0}),
//	    },
//	    builder.RandomSparse(12, 0.3),
//	)
//
// Option constructors panic on meaningless input (nil functions, negative
// rates); constructors return sentinel errors and never panic.
package builder
