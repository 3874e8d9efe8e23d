// Package checkpoint abstracts where a block's serialized state lives
// between runs, grounded on perf-analysis's internal/storage (the
// Storage interface, LocalStorage, COSStorage): a Store exposes
// Save/Load/Exists/Delete keyed by a checkpoint name, with a local-disk
// and a Tencent COS implementation. config gates which one is built.
package checkpoint
