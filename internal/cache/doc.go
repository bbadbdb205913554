// Package cache provides the cache managers handed to a Tollgate client.
//
// A [Manager] hands out one named [Cache] region per resource type. The
// in-memory manager built by [ManagerBuilder] applies a default time-to-live
// and time-to-idle to every region and lets individual regions override
// either value through a [RegionBuilder]. [DisabledManager] satisfies the same
// interface without storing anything.
package cache
