package tools

import (
	"flag"
	"os"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type IndexFlags struct {
	Input                     *string  `json:"input"`
	Output                    *string  `json:"output"`
	FolderProcessing          *bool    `json:"folder"`
	RecursiveFolderProcessing *bool    `json:"recursive"`
	Srid                      *int     `json:"srid"`
	WorkingSrid               *int     `json:"working_srid"`
	ZOffset                   *float64 `json:"zoffset"`
	MaxLevel                  *int     `json:"max_level"`
	Precision                 *int     `json:"precision"`
	Silent                    *bool    `json:"silent"`
	Help                      *bool    `json:"help"`
}

type FlagsForCommandDedup struct {
	IndexFlags
	MergeDistance *float64 `json:"merge_distance"`
}

type FlagsForCommandNearest struct {
	IndexFlags
	ExcludeSelf *bool `json:"exclude_self"`
}

type FlagsForCommandExport struct {
	IndexFlags
}

func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "", false, "Displays the version of the tool.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func ParseFlagsForCommandDedup(args []string) (FlagsForCommandDedup, error) {
	flagCommand := flag.NewFlagSet("command-dedup", flag.ContinueOnError)

	indexFlags := defineIndexFlags(flagCommand, "Specifies the output xyz file with the unique points.")
	mergeDistance := defineFloat64FlagCommand(flagCommand, "merge-distance", "d", 0, "Points closer than this distance to an already kept point are merged into it. 0 removes exact duplicates only.")

	if err := flagCommand.Parse(args); err != nil {
		return FlagsForCommandDedup{}, err
	}
	printDefaultsOnHelp(flagCommand, indexFlags.Help)

	return FlagsForCommandDedup{
		IndexFlags:    indexFlags,
		MergeDistance: mergeDistance,
	}, nil
}

func ParseFlagsForCommandNearest(args []string) (FlagsForCommandNearest, error) {
	flagCommand := flag.NewFlagSet("command-nearest", flag.ContinueOnError)

	indexFlags := defineIndexFlags(flagCommand, "Specifies the output file listing the nearest neighbour of each point.")
	excludeSelf := defineBoolFlagCommand(flagCommand, "exclude-self", "x", true, "Ignores points coinciding with the query point, so that the nearest other point is reported.")

	if err := flagCommand.Parse(args); err != nil {
		return FlagsForCommandNearest{}, err
	}
	printDefaultsOnHelp(flagCommand, indexFlags.Help)

	return FlagsForCommandNearest{
		IndexFlags:  indexFlags,
		ExcludeSelf: excludeSelf,
	}, nil
}

func ParseFlagsForCommandExport(args []string) (FlagsForCommandExport, error) {
	flagCommand := flag.NewFlagSet("command-export", flag.ContinueOnError)

	indexFlags := defineIndexFlags(flagCommand, "Specifies the output folder where to write the cell tree.")

	if err := flagCommand.Parse(args); err != nil {
		return FlagsForCommandExport{}, err
	}
	printDefaultsOnHelp(flagCommand, indexFlags.Help)

	return FlagsForCommandExport{
		IndexFlags: indexFlags,
	}, nil
}

func defineIndexFlags(flagCommand *flag.FlagSet, outputUsage string) IndexFlags {
	return IndexFlags{
		Input:                     defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input xyz file/folder."),
		Output:                    defineStringFlagCommand(flagCommand, "output", "o", "", outputUsage),
		FolderProcessing:          defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all point files from input folder. Input must be a folder if specified"),
		RecursiveFolderProcessing: defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for all point files inside the subfolders"),
		Srid:                      defineIntFlagCommand(flagCommand, "srid", "e", 4326, "EPSG srid code of input points."),
		WorkingSrid:               defineIntFlagCommand(flagCommand, "working-srid", "w", 0, "EPSG srid code the index is built in. Distances are measured in its units. 0 keeps the input srid."),
		ZOffset:                   defineFloat64FlagCommand(flagCommand, "zoffset", "z", 0, "Vertical offset to apply to points before indexing."),
		MaxLevel:                  defineIntFlagCommand(flagCommand, "max-level", "l", 8, "Depth at which index cells stop splitting."),
		Precision:                 defineIntFlagCommand(flagCommand, "precision", "p", 6, "Decimal places written for coordinates."),
		Silent:                    defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages."),
		Help:                      defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help."),
	}
}

// Lists the command flags when -help was given, the caller takes care of the rest
func printDefaultsOnHelp(flagCommand *flag.FlagSet, help *bool) {
	if *help {
		flagCommand.SetOutput(os.Stdout)
		flagCommand.PrintDefaults()
	}
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineIntFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue int, usage string) *int {
	var output int
	flagCommand.IntVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.IntVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
