// growlme - run a command, growl the result
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/growlme

// Package cli provides the Cobra-based command-line interface for growlme.
// A single root command runs the wrapped command, then reports its outcome
// to a Growl daemon over UDP.
package cli

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/growlme/internal/config"
	"github.com/ariel-frischer/growlme/internal/notify"
	"github.com/ariel-frischer/growlme/internal/progress"
	"github.com/ariel-frischer/growlme/internal/runner"
	"github.com/ariel-frischer/growlme/internal/transport"
)

// NewRootCmd builds the growlme root command. A fresh command is built per
// invocation so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "growlme [flags] command [args...]",
		Short: "run a command and growl when it finishes",
		Long: `growlme runs a command with its output passed through, then sends a
Growl notification reporting success or failure over UDP. growlme's own exit
status mirrors the wrapped command's exit code, whether or not the
notification could be delivered.

The target host defaults to the machine you connected from (SSH_CLIENT), so
a build kicked off over ssh notifies the desktop you are sitting at.`,
		Example: `  # Growl the ssh client when the build finishes
  growlme make -j8

  # Explicit host, sticky notification that stays until dismissed
  growlme -H 10.0.0.5 --sticky -- ./run-tests.sh

  # Hide output unless the command fails
  growlme -q -- terraform apply -auto-approve`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	// The first non-flag argument starts the wrapped command, so its own
	// flags never need a "--" separator.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringP("config", "c", "", "Path to config file")
	cmd.Flags().StringP("host", "H", "", "Growl daemon host (default: SSH client, else localhost)")
	cmd.Flags().StringP("password", "p", "", "Shared Growl password")
	cmd.Flags().String("password-file", "", "File holding the shared Growl password")
	cmd.Flags().StringP("title", "t", "", "Notification title (default: \"<hostname>: <command>\")")
	cmd.Flags().StringP("message", "m", "", "Text to send on success")
	cmd.Flags().String("fail", "", "Text to send on failure")
	cmd.Flags().BoolP("sticky", "s", false, "Keep the notification on screen until dismissed")
	cmd.Flags().BoolP("quiet", "q", false, "Capture command output, showing it only on failure")
	cmd.Flags().BoolP("no-growl", "n", false, "Run the command without sending notifications")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// applyFlagOverrides layers explicit command-line flags over the loaded
// configuration. Only flags the user actually set are applied.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("password") {
		cfg.Password, _ = cmd.Flags().GetString("password")
	}
	if cmd.Flags().Changed("password-file") {
		cfg.PasswordFile, _ = cmd.Flags().GetString("password-file")
	}
	if cmd.Flags().Changed("title") {
		cfg.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("message") {
		cfg.SuccessText, _ = cmd.Flags().GetString("message")
	}
	if cmd.Flags().Changed("fail") {
		cfg.FailText, _ = cmd.Flags().GetString("fail")
	}
	if cmd.Flags().Changed("sticky") {
		cfg.Sticky, _ = cmd.Flags().GetBool("sticky")
	}
	if cmd.Flags().Changed("quiet") {
		cfg.Quiet, _ = cmd.Flags().GetBool("quiet")
	}
}

// defaultTitle derives the notification title from the local hostname and
// the wrapped command line.
func defaultTitle(argv []string) string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "localhost"
	}
	return fmt.Sprintf("%s: %s", hostname, strings.Join(argv, " "))
}

func run(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	password, err := cfg.ResolvePassword()
	if err != nil {
		return err
	}

	title := cfg.Title
	if title == "" {
		title = defaultTitle(args)
	}

	r := &runner.Runner{Quiet: cfg.Quiet}
	var ind *progress.Indicator
	if cfg.Quiet {
		ind = progress.Start(strings.Join(args, " "))
	}
	res, runErr := r.Run(args)
	if ind != nil {
		ind.Stop()
	}

	if runErr != nil {
		// The command never ran, so there is no outcome to report.
		var startErr *runner.StartError
		if errors.As(runErr, &startErr) {
			fmt.Fprintf(os.Stderr, "growlme: %v\n", startErr)
			cmd.SilenceErrors = true
			return NewExitError(startErr.ExitCode())
		}
		return runErr
	}

	if cfg.Quiet && res.ExitCode != 0 {
		os.Stdout.Write(res.Output)
	}

	message := cfg.SuccessText
	if res.ExitCode != 0 {
		message = cfg.FailText
	}

	sender := transport.NewUDPSender(cfg.Host)
	if noGrowl, _ := cmd.Flags().GetBool("no-growl"); noGrowl {
		sender = transport.NewNoopSender()
	}
	if err := notify.New(sender, password).Notify(title, message, cfg.Sticky); err != nil {
		// Delivery is best-effort; the wrapped command's result stands.
		log.Printf("[growlme] warning: notification not delivered: %v", err)
	}

	if res.ExitCode != 0 {
		cmd.SilenceErrors = true
		return NewExitError(res.ExitCode)
	}
	return nil
}
