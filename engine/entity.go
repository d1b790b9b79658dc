package engine

// Entity is an opaque identifier, 0 is never issued
type Entity uint64
