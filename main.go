/*
 * This file is part of the Go Cesium Point Cloud Tiler distribution (https://github.com/mfbonfigli/gocesiumtiler).
 * Copyright (c) 2019 Massimo Federico Bonfigli - m.federico.bonfigli@gmail.com
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 *
 * This software also uses third party components. You can find information
 * on their credits and licensing in the file LICENSE-3RD-PARTIES.md that
 * you should have received togheter with the source code.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/ecopia-map/volume_index/internal/dedup"
	"github.com/ecopia-map/volume_index/pkg"
	"github.com/ecopia-map/volume_index/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/volume_index/tools"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const VERSION = "0.3.0"

// Deeper trees only add cells of vanishing size, and every level is one more recursion step
const maxLevelLimit = 32

const logo = `
            _                       _           _
 __   _____ | |_   _ _ __ ___   ___(_)_ __   __| | _____  __
 \ \ / / _ \| | | | | '_ ' _ \ / _ \ | '_ \ / _' |/ _ \ \/ /
  \ V / (_) | | |_| | | | | | |  __/ | | | | (_| |  __/>  <
   \_/ \___/|_|\__,_|_| |_| |_|\___|_|_| |_|\__,_|\___/_/\_\
  An octree point index for deduplication and neighbour lookup
  Copyright YYYY
`

func main() {
	// glog writes to files by default
	flag.Set("logtostderr", "true")

	flagsGlobal := tools.ParseFlagsGlobal()
	defer glog.Flush()

	if *flagsGlobal.Version {
		printVersion()
		return
	}

	args := flag.Args()
	if *flagsGlobal.Help || len(args) == 0 {
		showHelp()
		if len(args) == 0 && !*flagsGlobal.Help {
			glog.Fatal("Please specify a subcommand [dedup|nearest|export].")
		}
		return
	}
	cmd, args := args[0], args[1:]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch dedup.ParseCommand(cmd) {
	case dedup.CommandDedup:
		err = mainCommandDedup(ctx, args)
	case dedup.CommandNearest:
		err = mainCommandNearest(ctx, args)
	case dedup.CommandExport:
		err = mainCommandExport(ctx, args)
	default:
		glog.Fatalf("Unrecognized command [%q]. Command must be one of [dedup|nearest|export]", cmd)
	}

	if err != nil {
		glog.Fatalf("Error while running %s: %v", cmd, err)
	}
}

func mainCommandDedup(ctx context.Context, args []string) error {
	flags, err := tools.ParseFlagsForCommandDedup(args)
	if err != nil {
		return err
	}
	if *flags.Help {
		return nil
	}

	opts := optionsFromIndexFlags(&flags.IndexFlags, dedup.CommandDedup)
	opts.DedupOptions = &dedup.DedupOptions{
		MergeDistance: *flags.MergeDistance,
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	algorithmManager := std_algorithm_manager.NewAlgorithmManager(opts)
	defer algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	deduplicator := pkg.NewDeduplicator(tools.NewStandardFileFinder(), algorithmManager)
	if err := run(ctx, deduplicator, opts); err != nil {
		return err
	}
	tools.LogOutput("Dedup stats:", tools.FmtJSONString(deduplicator.Stats()))
	return nil
}

func mainCommandNearest(ctx context.Context, args []string) error {
	flags, err := tools.ParseFlagsForCommandNearest(args)
	if err != nil {
		return err
	}
	if *flags.Help {
		return nil
	}

	opts := optionsFromIndexFlags(&flags.IndexFlags, dedup.CommandNearest)
	opts.NearestOptions = &dedup.NearestOptions{
		ExcludeSelf: *flags.ExcludeSelf,
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	algorithmManager := std_algorithm_manager.NewAlgorithmManager(opts)
	defer algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	return run(ctx, pkg.NewNearestFinder(tools.NewStandardFileFinder(), algorithmManager), opts)
}

func mainCommandExport(ctx context.Context, args []string) error {
	flags, err := tools.ParseFlagsForCommandExport(args)
	if err != nil {
		return err
	}
	if *flags.Help {
		return nil
	}

	opts := optionsFromIndexFlags(&flags.IndexFlags, dedup.CommandExport)
	if err := validateOptions(opts); err != nil {
		return err
	}

	algorithmManager := std_algorithm_manager.NewAlgorithmManager(opts)
	defer algorithmManager.GetCoordinateConverterAlgorithm().Cleanup()

	return run(ctx, pkg.NewExporter(tools.NewStandardFileFinder(), algorithmManager), opts)
}

// Put args inside an Options struct
func optionsFromIndexFlags(flags *tools.IndexFlags, command dedup.Command) *dedup.Options {
	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}

	return &dedup.Options{
		Input:            *flags.Input,
		Output:           *flags.Output,
		FolderProcessing: *flags.FolderProcessing,
		Recursive:        *flags.RecursiveFolderProcessing,
		Srid:             *flags.Srid,
		WorkingSrid:      *flags.WorkingSrid,
		ZOffset:          *flags.ZOffset,
		MaxLevel:         *flags.MaxLevel,
		Precision:        int32(*flags.Precision),
		Command:          command,
	}
}

// Validates the input options provided to the command line tool
func validateOptions(opts *dedup.Options) error {
	if _, err := os.Stat(opts.Input); os.IsNotExist(err) {
		return errors.Errorf("input file/folder %q not found", opts.Input)
	}
	if opts.Output == "" {
		return errors.New("output must be specified")
	}
	if opts.MaxLevel < 0 {
		return errors.New("max-level cannot be negative")
	}
	if opts.MaxLevel > maxLevelLimit {
		return errors.Errorf("max-level cannot exceed %d", maxLevelLimit)
	}
	if opts.Precision < 0 {
		return errors.New("precision cannot be negative")
	}
	if opts.DedupOptions != nil && opts.DedupOptions.MergeDistance < 0 {
		return errors.New("merge-distance cannot be negative")
	}
	return nil
}

func run(ctx context.Context, runner pkg.IRunner, opts *dedup.Options) error {
	defer timeTrack(time.Now(), opts.Command.String())

	if err := runner.Run(ctx, opts); err != nil {
		return err
	}
	tools.LogOutput("Completed")
	return nil
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("volume_index reads xyz point files into an octree and removes duplicates, finds nearest neighbours or exports the cell tree")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: volume_index [global flags] dedup|nearest|export [command flags]")
	fmt.Println("")
	fmt.Println("Global flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Println("Run a command with -help to list its flags.")
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
