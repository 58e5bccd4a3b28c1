// Package resultstore is the client-side stash for generation results,
// keyed by the server-issued generation ID.
//
// Entries are stored verbatim and advisory: the generation API remains the
// source of truth and can be re-queried by ID when the local entry is
// absent. Volume is low, so there is no eviction or TTL. MemoryStore covers
// a single process/session; RedisStore shares the stash across processes.
package resultstore
