package main

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/repoboard/repoboard/internal/api"
	"github.com/repoboard/repoboard/internal/board"
	"github.com/repoboard/repoboard/internal/config"
	"github.com/repoboard/repoboard/internal/store"
	"github.com/repoboard/repoboard/internal/tui"
	"github.com/repoboard/repoboard/internal/ui"
)

var version = "dev"

func init() {
	if version != "dev" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

func main() {
	root := &cobra.Command{
		Use:   "repoboard",
		Short: "Terminal dashboard for watched GitHub repositories and their workflow runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}

	root.AddCommand(reposCmd(), statusCmd(), versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDashboard() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := api.NewClient(api.Options{
		BaseURL:  cfg.APIBaseURL,
		Token:    cfg.Token,
		CacheTTL: cfg.CacheTTL,
	})

	watch := store.New(cfg.StorePath)
	refs, err := watch.Load()
	if err != nil {
		return err
	}

	app := tui.NewApp(cfg, client, watch, refs)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func reposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Manage the watched-repository list",
	}
	cmd.AddCommand(reposAddCmd(), reposRemoveCmd(), reposListCmd())
	return cmd
}

func reposAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <url|owner/repo>",
		Short: "Add a repository to the watch list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			ref, err := api.ParseRepoInput(args[0])
			if err != nil {
				return err
			}
			added, err := store.New(cfg.StorePath).Add(ref)
			if err != nil {
				return err
			}
			if !added {
				fmt.Printf("%s is already watched\n", ref)
				return nil
			}
			fmt.Printf("Watching %s\n", ref)
			return nil
		},
	}
}

func reposRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <url|owner/repo>",
		Short: "Remove a repository from the watch list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			ref, err := api.ParseRepoInput(args[0])
			if err != nil {
				return err
			}
			removed, err := store.New(cfg.StorePath).Remove(ref)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("%s was not watched\n", ref)
				return nil
			}
			fmt.Printf("Stopped watching %s\n", ref)
			return nil
		},
	}
}

func reposListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the watched repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			refs, err := store.New(cfg.StorePath).Load()
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				fmt.Println("No repositories watched")
				return nil
			}
			for _, ref := range refs {
				fmt.Println(ref)
			}
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print a one-shot board snapshot and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			refs, err := store.New(cfg.StorePath).Load()
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				fmt.Println("No repositories watched")
				return nil
			}

			client := api.NewClient(api.Options{
				BaseURL:  cfg.APIBaseURL,
				Token:    cfg.Token,
				CacheTTL: cfg.CacheTTL,
			})

			for _, s := range board.Fetch(cmd.Context(), client, refs, cfg.RunsPerRepo) {
				if s.Err != nil {
					fmt.Printf("%-40s error: %v\n", s.Ref, s.Err)
					continue
				}
				if run := s.LatestRun(); run != nil {
					fmt.Printf("%-40s %-12s %s (#%d, %s)\n",
						s.Ref, run.StatusLabel(), run.Name, run.RunNumber,
						ui.RelativeTime(run.CreatedAt))
				} else {
					fmt.Printf("%-40s no runs\n", s.Ref)
				}
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("repoboard", version)
		},
	}
}
