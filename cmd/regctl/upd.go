package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/regedit/pkg/regedit"
	"github.com/mathworld/regedit/pkg/types"
)

var (
	updKey     string
	updVal     string
	updNewHKey string
	updNewKey  string
	updNewVal  string
)

func init() {
	cmd := newUpdCmd()
	cmd.Flags().StringVar(&updKey, "key", "", "Key name the update applies to")
	cmd.Flags().StringVar(&updVal, "val", "", "Value to store (fallback when --new-val is absent)")
	cmd.Flags().StringVar(&updNewHKey, "new-hkey", "", "Rename the HKEY to this path")
	cmd.Flags().StringVar(&updNewKey, "new-key", "", "Rename the key to this name")
	cmd.Flags().StringVar(&updNewVal, "new-val", "", "Store this value under the key")
	rootCmd.AddCommand(cmd)
}

func newUpdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upd <file> <hkey>",
		Short: "Rename an HKEY or key, or update a value",
		Long: `The upd command renames an HKEY (--new-hkey), renames a key (--new-key)
or updates a key's value (--new-val, or --val as fallback). Renamed entries
re-append at the end of their block. Updating a missing key creates it.

Exactly one of the rename/update fields decides the operation; --new-hkey
wins over --new-key, which wins over the value fields.

Example:
  regctl upd MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --new-hkey '[HKEY_LOCAL_MACHINE\SOFTWARE\MacroStrategy]'
  regctl upd MSIReg.reg '[HKEY_LOCAL_MACHINE\SOFTWARE\MicroStrategy]' --key MetaDataVersion --new-val '"129"'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := baseRequest(types.VerbUpd, args)
			req.Key = updKey
			req.Val = updVal
			req.NewHKey = updNewHKey
			req.NewKey = updNewKey
			req.NewVal = updNewVal
			resp, err := regedit.Apply(req)
			if err != nil {
				return err
			}
			return report(resp)
		},
	}
}
