// Package orienteer computes how much value a small team of agents can
// collect on a graph of reward nodes within a fixed number of time steps.
//
// 🚀 What is orienteer?
//
//	A breadth-first state-space search with dominance pruning:
//		• Model: named nodes, per-step rates, undirected moves (core)
//		• Search: sequential FIFO engine and a sharded parallel engine (orienteer)
//		• Reference: exact subset solver over BFS distances (exact, bfs)
//		• Input/output: text, YAML and JSON records (records)
//		• Synthetic graphs: path, cycle, star, grid, complete, random (builder)
//		• Operations: Prometheus metrics, LRU/Redis result cache, YAML+env config
//
// ✨ Rules of the game
//
//   - Each step every agent either moves to a neighbor or activates the node
//     it stands on. An agent with nothing to do waits.
//   - Activating a node with rate r when t steps remain earns r*(t-1).
//   - A node is activated at most once, by at most one agent.
//
// Layout:
//
//	core/         - immutable arena graph, name lookup, reward bit indices
//	orienteer/    - states, canonical keys, option generator, engines
//	exact/        - brute-force optimum for up to 16 reward nodes
//	bfs/          - hop distances used by exact
//	records/      - parsers and writers for graph descriptions
//	builder/      - deterministic topology generators
//	metrics/      - orienteer.Observer backed by Prometheus
//	cache/        - fingerprinted result cache (memory, Redis)
//	config/       - CLI configuration
//	cmd/orienteer - the command-line tool
//
// Quick ASCII example:
//
//	A(0)───B(13)───C(2)
//
// with 6 steps and one agent: move to B (5 left), activate B for 13*4,
// move to C (3 left), activate C for 2*2. Total 56.
//
//	go install github.com/katalvlaran/orienteer/cmd/orienteer@latest
package orienteer
