// Package dataset reads and writes tabular CSV corpora and their named
// splits. Rows are plain field records; interpreting them is left to the
// caller.
package dataset

import (
	"encoding/csv"
	"maps"
	"math"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Row is one record of a dataset, keyed by field name.
type Row = map[string]string

// Dataset is an ordered collection of rows sharing one header. Values may
// contain newlines; on disk they are stored escaped so every CSV record
// stays on one line.
type Dataset struct {
	fields []string
	rows   []Row
}

// New builds a dataset over the given field order and rows.
func New(fields []string, rows []Row) *Dataset {
	return &Dataset{
		fields: slices.Clone(fields),
		rows:   lo.Map(rows, func(row Row, _ int) Row { return maps.Clone(row) }),
	}
}

// Load reads a CSV file with a header row, unescaping newline sequences in
// every value.
func Load(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset %s failed", path)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset %s failed", path)
	}
	if len(records) == 0 {
		return nil, errors.Errorf("dataset %s has no header row", path)
	}

	fields := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(fields))
		for i, field := range fields {
			row[field] = unescape(record[i])
		}
		rows = append(rows, row)
	}
	log.Debugf("loaded %d rows from %s", len(rows), path)
	return &Dataset{fields: fields, rows: rows}, nil
}

// Save writes the dataset as a CSV file with a header row, escaping newlines
// in every value. It is the exact dual of Load.
func (d *Dataset) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating dataset %s failed", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(d.fields); err != nil {
		return errors.Wrapf(err, "writing dataset header to %s failed", path)
	}
	for _, row := range d.rows {
		record := make([]string, len(d.fields))
		for i, field := range d.fields {
			record[i] = escape(row[field])
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "writing dataset row to %s failed", path)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "flushing dataset %s failed", path)
	}
	log.Debugf("saved %d rows to %s", len(d.rows), path)
	return nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Fields returns the field names in header order.
func (d *Dataset) Fields() []string {
	return slices.Clone(d.fields)
}

// Row returns a copy of the ith row.
func (d *Dataset) Row(i int) Row {
	return maps.Clone(d.rows[i])
}

// Rows returns copies of all rows in their current order.
func (d *Dataset) Rows() []Row {
	return lo.Map(d.rows, func(row Row, _ int) Row { return maps.Clone(row) })
}

// Sample keeps a random subset of round(frac*Len()) rows, drawn without
// replacement and left in random order. frac is clamped to [0, 1].
func (d *Dataset) Sample(frac float64, seed uint64) {
	d.Shuffle(seed)
	keep := int(math.Round(frac * float64(len(d.rows))))
	keep = min(max(keep, 0), len(d.rows))
	d.rows = d.rows[:keep]
}

// Shuffle permutes the rows in place.
func (d *Dataset) Shuffle(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, 0))
	rng.Shuffle(len(d.rows), func(i, j int) {
		d.rows[i], d.rows[j] = d.rows[j], d.rows[i]
	})
}

func escape(value string) string {
	return strings.ReplaceAll(value, "\n", "\\n")
}

func unescape(value string) string {
	return strings.ReplaceAll(value, "\\n", "\n")
}
