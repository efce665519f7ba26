package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/satdata/pkg/dataset"
	"github.com/limaJavier/satdata/pkg/sat"
)

var (
	dataDatasetArg       string
	dataVerifySplitArg   string
	dataCheckTargetArg   bool
	dataOutArg           string
	dataGenerateSplitArg string
	dataRowsArg          int
	dataVarsArg          int
	dataClausesArg       int
	dataSeedArg          uint64
)

func newDataCmd() *cobra.Command {
	dataCmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect, verify and generate dataset splits",
	}

	dataCmd.AddCommand(newDataInspectCmd())
	dataCmd.AddCommand(newDataVerifyCmd())
	dataCmd.AddCommand(newDataGenerateCmd())

	return dataCmd
}

// newDataInspectCmd returns a command that summarizes the splits of a
// dataset directory.
func newDataInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the splits of a dataset directory",
		RunE:  dataInspectFunc,
	}

	inspectCmd.Flags().StringVarP(&dataDatasetArg, "dataset", "d", "", "The directory holding the dataset splits.")
	if err := inspectCmd.MarkFlagRequired("dataset"); err != nil {
		log.Fatalf("Failed to mark `dataset` flag for `inspect` subcommand as required")
	}

	return inspectCmd
}

func dataInspectFunc(cmd *cobra.Command, args []string) error {
	splits, err := dataset.LoadDir(dataDatasetArg)
	if err != nil {
		return err
	}
	for _, name := range splits.SplitNames() {
		split, _ := splits.Split(name)
		fmt.Printf("%s: %d rows, fields [%s]\n", name, split.Len(), strings.Join(split.Fields(), ", "))
	}
	return nil
}

// newDataVerifyCmd returns a command that parses every row of a dataset and
// stops at the first malformed one.
func newDataVerifyCmd() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Parse every sample of a dataset, failing on the first malformed row",
		Long: `The satdata data verify command parses every row of the chosen
        splits into a formula and target assignment, reporting the first
        malformed row together with its split and position. With
        --check-target it additionally requires every target to satisfy its
        formula.
        `,
		RunE: dataVerifyFunc,
	}

	verifyCmd.Flags().StringVarP(&dataDatasetArg, "dataset", "d", "", "The directory holding the dataset splits.")
	if err := verifyCmd.MarkFlagRequired("dataset"); err != nil {
		log.Fatalf("Failed to mark `dataset` flag for `verify` subcommand as required")
	}
	verifyCmd.Flags().StringVarP(&dataVerifySplitArg, "split", "s", "", "Verify only the named split.")
	verifyCmd.Flags().BoolVar(&dataCheckTargetArg, "check-target", false, "also require every target to satisfy its formula")

	return verifyCmd
}

func dataVerifyFunc(cmd *cobra.Command, args []string) error {
	splits, err := dataset.LoadDir(dataDatasetArg)
	if err != nil {
		return err
	}
	names := splits.SplitNames()
	if dataVerifySplitArg != "" {
		names = []string{dataVerifySplitArg}
	}
	for _, name := range names {
		split, ok := splits.Split(name)
		if !ok {
			return errors.Errorf("split %s not found under %s", name, dataDatasetArg)
		}
		for i := range split.Len() {
			sample, err := sat.SampleFromFields(split.Row(i))
			if err != nil {
				return errors.Wrapf(err, "row %d of split %s", i, name)
			}
			if dataCheckTargetArg && !sample.Correct() {
				return errors.Errorf("row %d of split %s: target does not satisfy the formula", i, name)
			}
		}
		log.Infof("split %s: %d rows verified", name, split.Len())
	}
	return nil
}

// newDataGenerateCmd returns a command that writes a synthetic split of
// planted samples.
func newDataGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic split of satisfiable samples",
		Long: `The satdata data generate command draws random formulas with a
        planted target assignment and writes them as one dataset split, giving
        the rest of the pipeline reproducible smoke-test data.

        $ satdata data generate -o corpora/synthetic --rows 1000 --vars 20 --clauses 91
        `,
		RunE: dataGenerateFunc,
	}

	generateCmd.Flags().StringVarP(&dataOutArg, "out", "o", "", "The directory the split is written under.")
	if err := generateCmd.MarkFlagRequired("out"); err != nil {
		log.Fatalf("Failed to mark `out` flag for `generate` subcommand as required")
	}
	generateCmd.Flags().StringVarP(&dataGenerateSplitArg, "split", "s", "train", "The name of the generated split.")
	generateCmd.Flags().IntVar(&dataRowsArg, "rows", 100, "The number of samples to generate.")
	generateCmd.Flags().IntVar(&dataVarsArg, "vars", 20, "The number of variables per formula.")
	generateCmd.Flags().IntVar(&dataClausesArg, "clauses", 91, "The number of clauses per formula.")
	generateCmd.Flags().Uint64Var(&dataSeedArg, "seed", 0, "The generation seed.")

	return generateCmd
}

func dataGenerateFunc(cmd *cobra.Command, args []string) error {
	rng := rand.New(rand.NewPCG(dataSeedArg, 0))
	records := make([]sat.FieldRecord, 0, dataRowsArg)
	for range dataRowsArg {
		records = append(records, sat.PlantedSample(rng, dataVarsArg, dataClausesArg))
	}
	rows := lo.Map(records, func(record sat.FieldRecord, _ int) dataset.Row { return record.ToFields() })

	dir := filepath.Join(dataOutArg, dataGenerateSplitArg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating split directory %s failed", dir)
	}
	path := filepath.Join(dir, dataGenerateSplitArg+".csv")
	ds := dataset.New([]string{sat.FormulaField, sat.AssignmentField}, rows)
	if err := ds.Save(path); err != nil {
		return err
	}
	log.Infof("wrote %d samples to %s", ds.Len(), path)
	return nil
}
