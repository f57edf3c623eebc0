package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cropadvisor/entities"
	"cropadvisor/pkg/advisory"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/scoring"
)

func newRootCmd() *cobra.Command {
	var catalogPath string
	root := &cobra.Command{
		Use:           "cropadvisor",
		Short:         "Rank crops for a farm without running the server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "crop table (.csv or .xlsx); built-in table when empty")

	load := func() (*catalog.Catalog, error) {
		if catalogPath == "" {
			return catalog.Default(), nil
		}
		return catalog.Load(catalogPath)
	}

	root.AddCommand(
		newRecommendCmd(load),
		newCropCmd(load),
		newSoilCmd(load),
		newCatalogCmd(),
	)
	return root
}

type loader func() (*catalog.Catalog, error)

func newRecommendCmd(load loader) *cobra.Command {
	var (
		farmPath string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Score every crop against a farm description (JSON)",
		Example: `  cropadvisor recommend --farm farm.json --limit 5
  cat farm.json | cropadvisor recommend --farm -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := load()
			if err != nil {
				return err
			}
			var r io.Reader = cmd.InOrStdin()
			if farmPath != "-" {
				f, err := os.Open(farmPath)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var farm entities.FarmConditions
			if err := json.NewDecoder(r).Decode(&farm); err != nil {
				return fmt.Errorf("decode farm: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), scoring.Recommend(cat.All(), farm, limit))
		},
	}
	cmd.Flags().StringVar(&farmPath, "farm", "-", "farm conditions JSON file, - for stdin")
	cmd.Flags().IntVar(&limit, "limit", scoring.DefaultLimit, "number of crops to return")
	return cmd
}

func newCropCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "crop <name>",
		Short: "Print one crop profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := load()
			if err != nil {
				return err
			}
			c, ok := cat.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", entities.ErrCropNotFound, args[0])
			}
			return writeJSON(cmd.OutOrStdout(), c)
		},
	}
}

func newSoilCmd(load loader) *cobra.Command {
	var (
		soil entities.SoilObservation
		ph   float64
	)
	cmd := &cobra.Command{
		Use:   "soil",
		Short: "Soil-only advice and matching crops",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("ph") {
				soil.PH = &ph
			}
			if soil.Type == "" && soil.PH == nil {
				return fmt.Errorf("%w: --type or --ph is required", entities.ErrInvalidInput)
			}
			cat, err := load()
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), advisory.AnalyzeSoil(cat.All(), soil))
		},
	}
	cmd.Flags().StringVar(&soil.Type, "type", "", "soil type label, e.g. \"Sandy Loam\"")
	cmd.Flags().Float64Var(&ph, "ph", 0, "soil pH")
	cmd.Flags().StringVar(&soil.Drainage, "drainage", "", "good, moderate or poor")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Crop table utilities"}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <path>",
		Short: "Validate a .csv or .xlsx crop table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d crops\n", args[0], cat.Len())
			return nil
		},
	})
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
