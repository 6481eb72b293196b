package dedup

import "strings"

type Command string

const (
	CommandDedup   Command = "dedup"
	CommandNearest Command = "nearest"
	CommandExport  Command = "export"
)

func ParseCommand(value string) Command {
	switch Command(strings.Trim(strings.ToLower(value), " ")) {
	case CommandDedup:
		return CommandDedup
	case CommandNearest:
		return CommandNearest
	case CommandExport:
		return CommandExport
	}
	return ""
}

func (c Command) String() string {
	return string(c)
}

// Contains the options shared by all commands
type Options struct {
	Input            string  // Input xyz file/folder
	Output           string  // Output file (dedup, nearest) or folder (export)
	FolderProcessing bool    // Enables the processing of all xyz files in folder
	Recursive        bool    // Recursive lookup of xyz files in subfolders
	Srid             int     // EPSG code of the input points
	WorkingSrid      int     // EPSG code of the system the index is built in
	ZOffset          float64 // Z offset to apply to points before indexing
	MaxLevel         int     // Depth at which index cells stop splitting
	Precision        int32   // Decimal places written for coordinates
	WithAttributes   bool    // Write colour, intensity and classification columns

	Command        Command
	DedupOptions   *DedupOptions
	NearestOptions *NearestOptions
}

type DedupOptions struct {
	// Points closer than this to an already kept point are merged into it. 0 keeps only exact duplicates out.
	MergeDistance float64
}

type NearestOptions struct {
	ExcludeSelf bool
}

func (opt *Options) Copy() *Options {
	newOpt := *opt
	newOpt.DedupOptions = nil
	newOpt.NearestOptions = nil

	if opt.DedupOptions != nil {
		dedupOpt := *opt.DedupOptions
		newOpt.DedupOptions = &dedupOpt
	}

	if opt.NearestOptions != nil {
		nearestOpt := *opt.NearestOptions
		newOpt.NearestOptions = &nearestOpt
	}

	return &newOpt
}

// Returns true when input points need to be reprojected before indexing
func (opt *Options) NeedsReprojection() bool {
	return opt.WorkingSrid != 0 && opt.WorkingSrid != opt.Srid
}
