// Package cmd implements the command-line interface for subgrab.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subgrab-cli/subgrab/color"
	"github.com/subgrab-cli/subgrab/constant"
	"github.com/subgrab-cli/subgrab/icon"
	"github.com/subgrab-cli/subgrab/key"
	"github.com/subgrab-cli/subgrab/log"
	"github.com/subgrab-cli/subgrab/style"
	"github.com/subgrab-cli/subgrab/util"
	"github.com/subgrab-cli/subgrab/version"
	"github.com/subgrab-cli/subgrab/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.Flags().StringP("file", "f", "", "Path to the link list file (txt)")
	rootCmd.Flags().StringP("output", "o", "", "Path to the output directory")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist finished batches to the localized download history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnDownload, rootCmd.PersistentFlags().Lookup("write-history")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the subgrab application.
var rootCmd = &cobra.Command{
	Use:   constant.Subgrab,
	Short: "A minimalist command-line downloader for episode subtitle link lists",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A minimalist command-line downloader for episode subtitle link lists"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		var (
			inputFile = lo.Must(cmd.Flags().GetString("file"))
			outputDir = lo.Must(cmd.Flags().GetString("output"))
		)

		// Interactive sessions get the closing acknowledgement prompt;
		// flag-driven ones exit as soon as the batch is done.
		interactive := inputFile == "" || outputDir == ""

		if inputFile == "" {
			prompt := survey.Input{Message: "Path to the link list file (txt):"}
			handleErr(survey.AskOne(&prompt, &inputFile, survey.WithValidator(survey.Required)))
		}

		if outputDir == "" {
			prompt := survey.Input{Message: "Path to the output directory:"}
			handleErr(survey.AskOne(&prompt, &outputDir, survey.WithValidator(survey.Required)))
		}

		handleErr(run(inputFile, outputDir))

		if interactive {
			var ack string
			prompt := survey.Input{Message: "Finished. Press [Enter] to exit."}
			_ = survey.AskOne(&prompt, &ack)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
