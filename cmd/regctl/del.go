package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/regedit/pkg/regedit"
	"github.com/mathworld/regedit/pkg/types"
)

var (
	delKey string
	delVal string
)

func init() {
	cmd := newDelCmd()
	cmd.Flags().StringVar(&delKey, "key", "", "Key name to delete under the HKEY")
	cmd.Flags().StringVar(&delVal, "val", "", "Only delete when the stored value matches (omit or use * to skip the check)")
	rootCmd.AddCommand(cmd)
}

func newDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <file> <hkey>",
		Short: "Delete an HKEY, key or value-checked key",
		Long: `The del command removes an HKEY block (including all of its kv-pairs),
or a single key under it. With --val the key is only removed when its stored
value matches; a mismatch keeps the key and reports value-mismatch with
changed=false.

Example:
  regctl del MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy\Obsolete]'
  regctl del MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --key Clustering --val dword:00000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := baseRequest(types.VerbDel, args)
			req.Key = delKey
			req.Val = delVal
			resp, err := regedit.Apply(req)
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
}
