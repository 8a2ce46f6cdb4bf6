//go:build !windows

package assets

import (
	"io/fs"
	"os"
	"strconv"
	"syscall"
)

// tempCacheName names the per-user cache directory under the temp dir.
func tempCacheName() string {
	return cacheNamespace + "-" + strconv.Itoa(os.Geteuid())
}

func ownedByCurrentUser(info fs.FileInfo) bool {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}
	return int(st.Uid) == os.Geteuid()
}

func writableOnlyByOwner(info fs.FileInfo) bool {
	return info.Mode().Perm()&0o022 == 0
}
