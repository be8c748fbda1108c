package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathworld/regedit/internal/config"
	"github.com/mathworld/regedit/pkg/logging"
	"github.com/mathworld/regedit/pkg/regedit"
	"github.com/mathworld/regedit/pkg/types"
)

var (
	// Global flags
	verbosity  int
	quiet      bool
	jsonOut    bool
	ignoreCase bool
	strict     bool
	backup     bool
	outFile    string
	encoding   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Edit and query Windows registry text exports",
	Long: `regctl applies one targeted check, read, addition, deletion or update to
a Windows registry text export (.reg) while preserving the file's original
layout: HKEY and key ordering, value quoting, multi-line continuations and
the preamble banner.

Logical outcomes such as "already exists" or "value mismatch" are reported
via result codes with changed=false; only filesystem failures exit non-zero.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupLogger(verbosity)
		return applyConfigDefaults(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output the full response in JSON format")
	pf.BoolVar(&ignoreCase, "ignore-case", false, "Case-insensitive hkey/key/value lookups")
	pf.BoolVar(&strict, "strict", false, "Report unparsable lines as warnings")
	pf.BoolVar(&backup, "backup", false, "Write a .bak copy before replacing the output file")
	pf.StringVar(&outFile, "out", "", "Write the modified file here instead of in place")
	pf.StringVar(&encoding, "encoding", "", "Input encoding when no BOM is present (UTF-8, UTF-16LE, Windows-1252)")
	pf.StringVar(&configPath, "config", config.DefaultPath(), "Path to the regctl defaults file")
}

// applyConfigDefaults lets the TOML defaults file fill in flags the user did
// not set on the command line. Explicit flags always win.
func applyConfigDefaults(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("ignore-case") {
		ignoreCase = cfg.IgnoreCase
	}
	if !flags.Changed("strict") {
		strict = cfg.Strict
	}
	if !flags.Changed("backup") {
		backup = cfg.Backup
	}
	if !flags.Changed("encoding") {
		encoding = cfg.Encoding
	}
	if !flags.Changed("out") {
		outFile = cfg.OutFile
	}
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// baseRequest builds the request fields shared by every verb. Positional
// arguments are <file> <hkey>.
func baseRequest(verb types.Verb, args []string) types.Request {
	return types.Request{
		Verb:       verb,
		File:       args[0],
		OutFile:    outFile,
		HKey:       args[1],
		IgnoreCase: ignoreCase,
		Strict:     strict,
		Encoding:   encoding,
		Backup:     backup,
	}
}

// report prints the response in the requested output format.
func report(resp regedit.Response) error {
	if jsonOut {
		return printJSON(resp)
	}
	for _, w := range resp.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: line %d: %s: %q\n", w.Line, w.Reason, w.Text)
	}
	if resp.Code == types.CodeValueRead {
		fmt.Fprintln(os.Stdout, resp.Value)
		return nil
	}
	printInfo("%s [%s] changed=%t\n", resp.Message, resp.Code, resp.Changed)
	return nil
}

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
