package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/regedit/pkg/regedit"
	"github.com/mathworld/regedit/pkg/types"
)

var (
	chkKey string
	chkVal string
)

func init() {
	cmd := newChkCmd()
	cmd.Flags().StringVar(&chkKey, "key", "", "Key name to check under the HKEY")
	cmd.Flags().StringVar(&chkVal, "val", "", "Expected value for the key")
	rootCmd.AddCommand(cmd)
}

func newChkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chk <file> <hkey>",
		Short: "Check that an HKEY, key or key-value pair exists",
		Long: `The chk command verifies existence without modifying the file.

Without --key it checks the HKEY alone; with --key it checks the key; with
--key and --val it also compares the stored value.

Example:
  regctl chk MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]'
  regctl chk MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --key MetaDataVersion
  regctl chk MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --key Cluster --val dword:00000001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := baseRequest(types.VerbChk, args)
			req.Key = chkKey
			req.Val = chkVal
			resp, err := regedit.Apply(req)
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
}
