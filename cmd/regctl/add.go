package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/regedit/pkg/regedit"
	"github.com/mathworld/regedit/pkg/types"
)

var (
	addKey string
	addVal string
)

func init() {
	cmd := newAddCmd()
	cmd.Flags().StringVar(&addKey, "key", "", "Key name to add under the HKEY")
	cmd.Flags().StringVar(&addVal, "val", "", "Value for the key (omit or use * for a value-agnostic add)")
	rootCmd.AddCommand(cmd)
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <hkey>",
		Short: "Add an HKEY, key or key-value pair",
		Long: `The add command appends a new HKEY block, or a new key under an existing
HKEY (the block is created if absent). Adding something that already exists
is reported as already-exists with changed=false; an existing value is never
overwritten by add — use upd for that.

Example:
  regctl add MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy\DSS Server]'
  regctl add MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --key Clustering --val dword:00000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := baseRequest(types.VerbAdd, args)
			req.Key = addKey
			req.Val = addVal
			resp, err := regedit.Apply(req)
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
}
