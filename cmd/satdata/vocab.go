package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/limaJavier/satdata/pkg/vocab"
)

var (
	vocabDatasetArg  string
	vocabSplitArg    string
	vocabSamplingArg float64
	vocabSeedArg     uint64
	vocabOutArg      string
	vocabFileArg     string
)

func newVocabCmd() *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Build and apply token vocabularies",
	}

	vocabCmd.AddCommand(newVocabBuildCmd())
	vocabCmd.AddCommand(newVocabEncodeCmd())
	vocabCmd.AddCommand(newVocabDecodeCmd())

	return vocabCmd
}

// newVocabBuildCmd returns a command that collects a vocabulary from a
// dataset split and persists it.
func newVocabBuildCmd() *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Collect a vocabulary from a dataset split",
		Long: `The satdata vocab build command loads the splits of a dataset
        directory, draws a fraction of the rows of one split and collects the
        distinct tokens of every sampled formula and assignment into a
        vocabulary file.

        $ satdata vocab build -d corpora/uniform-random-3sat -o vocabulary.json
        `,
		RunE: vocabBuildFunc,
	}

	buildCmd.Flags().StringVarP(&vocabDatasetArg, "dataset", "d", "", "The directory holding the dataset splits.")
	if err := buildCmd.MarkFlagRequired("dataset"); err != nil {
		log.Fatalf("Failed to mark `dataset` flag for `build` subcommand as required")
	}
	buildCmd.Flags().StringVarP(&vocabSplitArg, "split", "s", "train", "The split tokens are collected from.")
	buildCmd.Flags().Float64Var(&vocabSamplingArg, "sampling", 0.1, "The fraction of rows drawn from the split.")
	buildCmd.Flags().Uint64Var(&vocabSeedArg, "seed", 0, "The sampling seed.")
	buildCmd.Flags().StringVarP(&vocabOutArg, "out", "o", "vocabulary.json", "The file the vocabulary is written to.")

	return buildCmd
}

func vocabBuildFunc(cmd *cobra.Command, args []string) error {
	vocabulary, err := vocab.Collect(vocabDatasetArg, vocabSplitArg, vocabSamplingArg, vocabSeedArg)
	if err != nil {
		return err
	}
	if err := vocabulary.Save(vocabOutArg); err != nil {
		return err
	}
	log.Infof("wrote vocabulary of size %d to %s", vocabulary.Size(), vocabOutArg)
	return nil
}

// newVocabEncodeCmd returns a command that converts tokens to ids with a
// persisted vocabulary.
func newVocabEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode TOKEN...",
		Short: "Convert tokens to vocabulary ids",
		Args:  cobra.MinimumNArgs(1),
		RunE:  vocabEncodeFunc,
	}

	encodeCmd.Flags().StringVarP(&vocabFileArg, "vocab", "v", "vocabulary.json", "The vocabulary file.")

	return encodeCmd
}

func vocabEncodeFunc(cmd *cobra.Command, args []string) error {
	vocabulary, err := vocab.Load(vocabFileArg)
	if err != nil {
		return err
	}
	ids, err := vocabulary.Encode(args)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(lo.Map(ids, func(id int, _ int) string { return strconv.Itoa(id) }), " "))
	return nil
}

// newVocabDecodeCmd returns a command that converts ids back to tokens with
// a persisted vocabulary.
func newVocabDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode ID...",
		Short: "Convert vocabulary ids back to tokens",
		Args:  cobra.MinimumNArgs(1),
		RunE:  vocabDecodeFunc,
	}

	decodeCmd.Flags().StringVarP(&vocabFileArg, "vocab", "v", "vocabulary.json", "The vocabulary file.")

	return decodeCmd
}

func vocabDecodeFunc(cmd *cobra.Command, args []string) error {
	vocabulary, err := vocab.Load(vocabFileArg)
	if err != nil {
		return err
	}
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not an id", arg)
		}
		ids[i] = id
	}
	tokens, err := vocabulary.Decode(ids)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(tokens, " "))
	return nil
}
