//go:build windows

package assets

import "io/fs"

// tempCacheName names the cache directory under the temp dir, which is
// already per-user on Windows.
func tempCacheName() string {
	return cacheNamespace
}

// Ownership is governed by ACLs on Windows; the per-user temp dir is trusted.
func ownedByCurrentUser(fs.FileInfo) bool { return true }

func writableOnlyByOwner(fs.FileInfo) bool { return true }
