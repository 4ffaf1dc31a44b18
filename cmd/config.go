package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wahlandcase/zpick/internal/config"
	"github.com/wahlandcase/zpick/internal/ui"
)

var (
	configSetup    bool
	configSetKey   string
	configSetValue string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the branch naming configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configSetup, "setup", false, "Interactive configuration setup")
	configCmd.Flags().StringVar(&configSetKey, "set-key", "", "Configuration key to set")
	configCmd.Flags().StringVar(&configSetValue, "set-value", "", "Configuration value to set")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	if configSetKey != "" || configSetValue != "" {
		if configSetKey == "" || configSetValue == "" {
			return fmt.Errorf("--set-key and --set-value must be provided together")
		}
		if err := cfg.Set(configSetKey, configSetValue); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Set %s = %s\n", configSetKey, configSetValue)
		return nil
	}

	if configSetup {
		return runConfigSetup(cfg)
	}

	fmt.Println(cfg.String())
	return nil
}

func runConfigSetup(cfg *config.Config) error {
	nonEmpty := func(s string) error {
		if s == "" {
			return fmt.Errorf("value cannot be empty")
		}
		return nil
	}
	boolish := func(s string) error {
		if _, err := strconv.ParseBool(s); err != nil {
			return fmt.Errorf("enter true or false")
		}
		return nil
	}

	prompts := []struct {
		question string
		current  string
		validate func(string) error
		assign   func(string)
	}{
		{"Branch prefix?", cfg.Prefix, nonEmpty, func(s string) { cfg.Prefix = s }},
		{"Production suffix?", cfg.SuffixPrd, nonEmpty, func(s string) { cfg.SuffixPrd = s }},
		{"Homologation suffix?", cfg.SuffixHml, nonEmpty, func(s string) { cfg.SuffixHml = s }},
		{"Colored output?", strconv.FormatBool(cfg.Color), boolish, func(s string) { cfg.Color, _ = strconv.ParseBool(s) }},
	}

	for _, p := range prompts {
		value, ok, err := ui.Prompt(p.question, p.current, p.validate)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Setup canceled, nothing saved.")
			return nil
		}
		p.assign(value)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("Configuration saved.")
	return nil
}
