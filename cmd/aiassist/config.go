package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mukisa95/ai-assist/internal/llm"
	"github.com/Mukisa95/ai-assist/internal/settings"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := a.store()
				if err != nil {
					return err
				}
				s, err := a.loadSettings()
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "file:\t%s\n", st.Path())
				fmt.Fprintf(w, "provider:\t%s\n", s.Provider)
				fmt.Fprintf(w, "model:\t%s\n", s.Model)
				if s.BaseURL != "" {
					fmt.Fprintf(w, "base url:\t%s\n", s.BaseURL)
				}
				fmt.Fprintf(w, "api key:\t%s\n", s.MaskedKey())
				fmt.Fprintf(w, "bold in headings:\t%t\n", s.Render.BoldInHeadings)
				return w.Flush()
			},
		},
		a.storeCmd("set-key <key>", "Save the API key", cobra.ExactArgs(1),
			func(st *settings.Store, args []string) (string, error) {
				return "API key saved.", st.SetAPIKey(args[0])
			}),
		a.storeCmd("remove-key", "Remove the saved API key", cobra.NoArgs,
			func(st *settings.Store, args []string) (string, error) {
				return "API key removed.", st.RemoveAPIKey()
			}),
		a.storeCmd("set-model <model>", "Select the generation model", cobra.ExactArgs(1),
			func(st *settings.Store, args []string) (string, error) {
				return fmt.Sprintf("Model set to %s.", args[0]), st.SetModel(args[0])
			}),
		a.storeCmd("set-provider <provider>", "Select the generation provider", cobra.ExactArgs(1),
			func(st *settings.Store, args []string) (string, error) {
				return fmt.Sprintf("Provider set to %s.", args[0]), st.SetProvider(args[0])
			}),
		a.storeCmd("bold-headings <true|false>", "Apply **bold** markers inside headings", cobra.ExactArgs(1),
			func(st *settings.Store, args []string) (string, error) {
				enable, err := strconv.ParseBool(args[0])
				if err != nil {
					return "", fmt.Errorf("bold-headings: %w", err)
				}
				return fmt.Sprintf("Bold in headings: %t.", enable), st.SetBoldInHeadings(enable)
			}),
		&cobra.Command{
			Use:   "models",
			Short: "List providers and their models",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := a.loadSettings()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, p := range llm.Providers {
					fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
					for _, m := range p.Models {
						mark := " "
						if p.ID == s.Provider && m == s.Model {
							mark = "*"
						}
						fmt.Fprintf(out, "  %s %s\n", mark, m)
					}
					fmt.Fprintf(out, "  API keys: %s\n", p.SignupURL)
				}
				return nil
			},
		},
	)
	return cmd
}

// storeCmd builds a subcommand that changes the settings file and prints a
// confirmation.
func (a *app) storeCmd(use, short string, args cobra.PositionalArgs, fn func(*settings.Store, []string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, argv []string) error {
			st, err := a.store()
			if err != nil {
				return err
			}
			msg, err := fn(st, argv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}
