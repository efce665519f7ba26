// Package vocab maps DIMACS tokens to dense integer ids for model input
// encoding.
package vocab

import (
	"cmp"
	"encoding/json"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// PaddingID is reserved for sequence padding and is never assigned to a
// token.
const PaddingID = 0

var (
	// ErrUnknownToken flags a token the vocabulary has no id for.
	ErrUnknownToken = errors.New("unknown token")
	// ErrUnknownID flags an id the vocabulary never assigned, PaddingID
	// included.
	ErrUnknownID = errors.New("unknown id")
)

// Vocabulary is an immutable token to id mapping. Ids are dense and start at
// 1, right above PaddingID.
type Vocabulary struct {
	mapping map[string]int
}

// New canonicalizes tokens into a vocabulary: duplicates collapse, tokens
// are ordered (non-numeric descending, numeric ascending) and ids are
// assigned sequentially from 1. The same token set always yields the same
// mapping.
func New(tokens []string) *Vocabulary {
	sorted := sortTokens(lo.Uniq(tokens))
	mapping := make(map[string]int, len(sorted))
	for i, token := range sorted {
		mapping[token] = i + 1
	}
	return &Vocabulary{mapping: mapping}
}

// Load reads a vocabulary from its JSON file.
func Load(path string) (*Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading vocabulary %s failed", path)
	}
	var mapping map[string]int
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, errors.Wrapf(err, "parsing vocabulary %s failed", path)
	}
	return &Vocabulary{mapping: mapping}, nil
}

// Save writes the vocabulary as a JSON object mapping tokens to ids, the
// exact dual of Load.
func (v *Vocabulary) Save(path string) error {
	raw, err := json.Marshal(v.mapping)
	if err != nil {
		return errors.Wrap(err, "encoding vocabulary failed")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing vocabulary %s failed", path)
	}
	return nil
}

// Size returns the number of ids, the padding id included.
func (v *Vocabulary) Size() int {
	return len(v.mapping) + 1
}

// Encode converts tokens to ids. An unknown token aborts with
// ErrUnknownToken; no partial encoding is returned.
func (v *Vocabulary) Encode(tokens []string) ([]int, error) {
	ids := make([]int, len(tokens))
	for i, token := range tokens {
		id, ok := v.mapping[token]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownToken, "%q", token)
		}
		ids[i] = id
	}
	return ids, nil
}

// Decode converts ids back to tokens, the exact inverse of Encode. An
// unassigned id aborts with ErrUnknownID; no partial decoding is returned.
func (v *Vocabulary) Decode(ids []int) ([]string, error) {
	reverse := lo.Invert(v.mapping)
	tokens := make([]string, len(ids))
	for i, id := range ids {
		token, ok := reverse[id]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownID, "%d", id)
		}
		tokens[i] = token
	}
	return tokens, nil
}

// Tokens returns the mapped tokens in id order.
func (v *Vocabulary) Tokens() []string {
	tokens := lo.Keys(v.mapping)
	slices.SortFunc(tokens, func(a, b string) int {
		return cmp.Compare(v.mapping[a], v.mapping[b])
	})
	return tokens
}

// sortTokens fixes the id order: non-numeric tokens descending
// lexicographically, then numeric tokens ascending numerically.
func sortTokens(tokens []string) []string {
	var words, numbers []string
	for _, token := range tokens {
		if isDigits(token) {
			numbers = append(numbers, token)
		} else {
			words = append(words, token)
		}
	}
	slices.SortFunc(words, func(a, b string) int { return strings.Compare(b, a) })
	slices.SortFunc(numbers, compareDigits)
	return append(words, numbers...)
}

func isDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// compareDigits orders all-digit tokens by numeric value without converting
// them, so tokens of any length stay total-ordered.
func compareDigits(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return strings.Compare(a, b)
}
