package vocab

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/limaJavier/satdata/pkg/dataset"
	"github.com/limaJavier/satdata/pkg/sat"
)

// Collect builds the vocabulary of a corpus. It loads the splits under dir,
// samples the named split down to the given fraction, parses every remaining
// row into a sample and unions the tokens of its formula and target
// assignment. A row that fails to parse aborts the collection.
func Collect(dir, split string, sampling float64, seed uint64) (*Vocabulary, error) {
	splits, err := dataset.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	ds, ok := splits.Split(split)
	if !ok {
		return nil, errors.Errorf("split %s not found under %s", split, dir)
	}
	ds.Sample(sampling, seed)

	tokens := make(map[string]struct{})
	for i := range ds.Len() {
		sample, err := sat.SampleFromFields(ds.Row(i))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d of split %s", i, split)
		}
		for _, view := range []sat.Tokenizable{sample.Input(), sample.Target()} {
			for _, token := range view.Tokens() {
				tokens[token] = struct{}{}
			}
		}
	}
	log.Infof("collected %d distinct tokens from %d rows of split %s", len(tokens), ds.Len(), split)
	return New(lo.Keys(tokens)), nil
}
