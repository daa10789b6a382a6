package command

import (
	"fmt"
	"log/slog"

	"naptar/src-server/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Level of the default slog handler, set from LOG_LEVEL once the config is read
var LogLevel = new(slog.LevelVar)

type cli struct {
	viper *viper.Viper
	as    *utils.AppState
}

func NewRootCmd() *cobra.Command {
	c := &cli{viper: utils.NewViper()}

	rootCmd := &cobra.Command{
		Use:   "naptar",
		Short: "Martonvásár waste collection, holiday and nameday calendar",
		Long: `naptar builds the waste collection schedule, public holidays and namedays
of a year for Martonvásár and publishes them as iCalendar feeds.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := utils.NewConfig(c.viper)
			if err != nil {
				return err
			}
			LogLevel.Set(config.GetLogLevel())
			c.as = utils.NewAppState(config)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	rootCmd.PersistentFlags().String("holiday-source", "", "nager or builtin (env HOLIDAY_SOURCE)")
	c.bind(rootCmd, "LOG_LEVEL", "log-level")
	c.bind(rootCmd, "HOLIDAY_SOURCE", "holiday-source")

	rootCmd.AddCommand(
		c.serveCmd(),
		c.exportCmd(),
		c.gridCmd(),
		c.dayCmd(),
	)
	return rootCmd
}

// Bind a flag of cmd to a config key, flags win over the environment
// only when set
func (c *cli) bind(cmd *cobra.Command, key string, flag string) {
	flags := cmd.Flags()
	if cmd.PersistentFlags().Lookup(flag) != nil {
		flags = cmd.PersistentFlags()
	}
	if err := c.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("can't bind flag %s: %v", flag, err))
	}
}

// Run the CLI, called by main.main()
func Execute() error {
	return NewRootCmd().Execute()
}
