package snapshots

import (
	"fmt"
	"path/filepath"
)

const manifestFile = "manifest.json"

// RankingsSnapshotPath builds the path to a rankings snapshot for a given date.
func RankingsSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, string(kindRankings), fmt.Sprintf("%s.json", date))
}
