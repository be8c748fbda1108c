package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/regedit/pkg/regedit"
	"github.com/mathworld/regedit/pkg/types"
)

var getKey string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getKey, "key", "", "Key name to read under the HKEY")
	_ = cmd.MarkFlagRequired("key")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <hkey>",
		Short: "Print the stored value of a key",
		Long: `The get command prints the raw stored value of a key, exactly as it
appears in the file (including quotes or dword:/hex: prefixes).

Example:
  regctl get MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --key InstallPath`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := baseRequest(types.VerbGet, args)
			req.Key = getKey
			resp, err := regedit.Apply(req)
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
}
