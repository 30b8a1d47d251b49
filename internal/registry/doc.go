// Package registry maintains the key to call-log mapping behind a tracker.
//
// Locking is two-tier: the registry's own lock is held only for lookup and
// lazy creation of a key's log, while each log carries its own lock for
// appends and reads. Recording to one key therefore never contends with
// recording to another.
package registry
