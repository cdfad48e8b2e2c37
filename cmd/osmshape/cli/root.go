// Copyright 2017-26 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli holds the root command and the helpers shared by the
// sub-commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"m4o.io/osmshape"
	"m4o.io/osmshape/street"
)

var vocabularyFile *os.File

// RootCmd is the osmshape command; sub-commands register themselves with it
// from init.
var RootCmd = &cobra.Command{
	Use:   "osmshape",
	Short: "Shape OpenStreetMap extracts into address documents",
	Long: "Shape the reliable nodes and ways of one locality of an OpenStreetMap " +
		"extract into documents with normalized street names",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("city", osmshape.DefaultLocality, "locality whose records are kept")
	flags.Var(NewReaderValue(nil, &vocabularyFile, "file"), "vocabulary", "YAML street-type vocabulary")
	flags.Bool("skip-malformed", false, "skip records with malformed coordinates instead of failing")
	flags.Uint16P("cpu", "c", uint16(runtime.GOMAXPROCS(-1)), "number of CPUs to use for PBF decoding")
	flags.BoolP("verbose", "v", false, "log debug information")
	flags.BoolP("quiet", "q", false, "do not show a progress bar")
}

// Options turns the persistent flags into processor options.
func Options(cmd *cobra.Command) ([]osmshape.Option, error) {
	flags := cmd.Flags()

	city, err := flags.GetString("city")
	if err != nil {
		return nil, err
	}

	skip, err := flags.GetBool("skip-malformed")
	if err != nil {
		return nil, err
	}

	ncpu, err := flags.GetUint16("cpu")
	if err != nil {
		return nil, err
	}

	opts := []osmshape.Option{
		osmshape.WithLocality(city),
		osmshape.WithSkipMalformed(skip),
		osmshape.WithNCpus(int(ncpu)),
	}

	if vocabularyFile != nil {
		if vocabularyFile != os.Stdin {
			defer vocabularyFile.Close()
		}

		v, err := street.LoadVocabulary(vocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("cannot load %s: %w", vocabularyFile.Name(), err)
		}

		opts = append(opts, osmshape.WithVocabulary(v))
	}

	return opts, nil
}

// OpenInput opens the file named by args, or stdin when there is none.  Files
// get a progress bar on stderr unless --quiet is given.
func OpenInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, "", nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return f, args[0], nil
	}

	in, err := WrapInputFile(f)
	if err != nil {
		_ = f.Close()

		return nil, "", err
	}

	return in, args[0], nil
}
