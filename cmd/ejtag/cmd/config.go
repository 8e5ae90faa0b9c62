package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceEJTAG/internal/config"
)

var (
	saved      config.Settings
	savedLocal string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or save default cable settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := config.NewStore(configDir).Load()
		if err != nil {
			return err
		}
		o := config.Defaults()
		st.Apply(&o)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cable:      %s\n", o.Cable)
		fmt.Fprintf(out, "port:       %s\n", o.Port)
		fmt.Fprintf(out, "wiggler:    %v\n", o.Wiggler)
		fmt.Fprintf(out, "delay:      %d\n", o.Delay)
		fmt.Fprintf(out, "poll limit: %d\n", o.PollLimit)
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store defaults applied before the command line switches",
	Long: `Store the cable defaults so they need not be repeated on every run. Switches
given on the command line still override them.

Example:
  ejtag config save --cable rpi --delay 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := configDir
		if savedLocal != "" {
			dir = savedLocal
		}
		path, err := config.NewStore(dir).Save(saved)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	},
}

func init() {
	f := configSaveCmd.Flags()
	f.StringVar(&saved.Cable, "cable", "", "cable kind (parport, rpi, ft232h, cmsis-dap, sim)")
	f.StringVar(&saved.Port, "port", "", "parallel port device")
	f.IntVar(&saved.Delay, "delay", 0, "bit-bang delay")
	f.IntVar(&saved.PollLimit, "polllimit", 0, "poll budget for target waits")
	f.BoolVar(&saved.Wiggler, "wiggler", false, "use wiggler wiring")
	f.StringVar(&savedLocal, "dir", "", "write to this folder instead of the user configuration folder")

	configCmd.AddCommand(configShowCmd, configSaveCmd)
	rootCmd.AddCommand(configCmd)
}
