package sat

import (
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Field names of the record contract shared with the tabular dataset layer.
const (
	FormulaField    = "formula"
	AssignmentField = "assignment"
)

// FieldRecord is implemented by every type that serializes itself into a
// named-field record, the row shape the dataset layer reads and writes.
type FieldRecord interface {
	ToFields() map[string]string
}

// Sample pairs a formula with its target assignment, and optionally with a
// predicted assignment. Samples are immutable once constructed.
type Sample struct {
	formula    *Formula
	target     *Assignment
	prediction *Assignment
}

type sampleFields struct {
	Formula    string `mapstructure:"formula"`
	Assignment string `mapstructure:"assignment"`
}

// NewSample pairs a formula with its target assignment.
func NewSample(formula *Formula, target *Assignment) *Sample {
	return &Sample{formula: formula, target: target}
}

// SampleFromFields builds a sample from a field record holding the formula
// and assignment fields in DIMACS text. A malformed field aborts
// construction; no partial sample is produced.
func SampleFromFields(fields map[string]string) (*Sample, error) {
	var (
		record   sampleFields
		metadata mapstructure.Metadata
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: &metadata,
		Result:   &record,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, err
	}
	if len(metadata.Unset) > 0 {
		slices.Sort(metadata.Unset)
		return nil, fmt.Errorf("%w: %s", ErrMissingField, metadata.Unset[0])
	}
	formula, err := ParseFormula(record.Formula)
	if err != nil {
		return nil, err
	}
	target, err := ParseAssignment(record.Assignment)
	if err != nil {
		return nil, err
	}
	return NewSample(formula, target), nil
}

// ToFields returns the sample as a field record, the exact dual of
// SampleFromFields. Predictions are not persisted.
func (s *Sample) ToFields() map[string]string {
	return lo.Assign(s.formula.ToFields(), s.target.ToFields())
}

// Input returns the formula of the sample.
func (s *Sample) Input() *Formula {
	return s.formula
}

// Target returns the target assignment of the sample.
func (s *Sample) Target() *Assignment {
	return s.target
}

// Prediction returns the predicted assignment, or nil when none has been
// attached.
func (s *Sample) Prediction() *Assignment {
	return s.prediction
}

// WithPrediction returns a copy of the sample carrying the predicted
// assignment.
func (s *Sample) WithPrediction(prediction *Assignment) *Sample {
	return &Sample{formula: s.formula, target: s.target, prediction: prediction}
}

// Equal reports whether the prediction and the target are the same
// assignment under set equality. It is false when no prediction is attached.
func (s *Sample) Equal() bool {
	if s.prediction == nil {
		return false
	}
	return s.target.Equal(s.prediction)
}

// EqualTokens reports whether the prediction and the target tokenize
// identically, comparing literal order as well as content.
func (s *Sample) EqualTokens() bool {
	if s.prediction == nil {
		return false
	}
	return slices.Equal(s.target.Tokens(), s.prediction.Tokens())
}

// Correct reports whether the target assignment satisfies the formula.
func (s *Sample) Correct() bool {
	return s.formula.Satisfied(s.target)
}
