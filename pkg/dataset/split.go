package dataset

import (
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SplitDataset groups the named splits of a corpus, typically train,
// validation and test.
type SplitDataset struct {
	splits map[string]*Dataset
}

// LoadDir discovers and loads every split under path. A subdirectory name/
// contributes split name from name/name.csv, and a top-level file name.csv
// contributes split name.
func LoadDir(path string) (*SplitDataset, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset directory %s failed", path)
	}

	splits := make(map[string]*Dataset)
	for _, entry := range entries {
		var name, file string
		switch {
		case entry.IsDir():
			name = entry.Name()
			file = filepath.Join(path, name, name+".csv")
		case strings.HasSuffix(entry.Name(), ".csv"):
			name = strings.TrimSuffix(entry.Name(), ".csv")
			file = filepath.Join(path, entry.Name())
		default:
			continue
		}
		log.Infof("loading split %s from %s", name, file)
		split, err := Load(file)
		if err != nil {
			return nil, err
		}
		splits[name] = split
	}
	return &SplitDataset{splits: splits}, nil
}

// Split returns the named split and whether it exists.
func (s *SplitDataset) Split(name string) (*Dataset, bool) {
	split, ok := s.splits[name]
	return split, ok
}

// SplitNames returns the names of the splits in sorted order.
func (s *SplitDataset) SplitNames() []string {
	return slices.Sorted(maps.Keys(s.splits))
}

// Len returns the number of splits.
func (s *SplitDataset) Len() int {
	return len(s.splits)
}
