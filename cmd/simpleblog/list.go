package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ldlewis/simpleblog/internal/config"
	fsstore "github.com/ldlewis/simpleblog/pkg/adapters/fs"
	"github.com/ldlewis/simpleblog/pkg/core"
)

var listMatch string

var listCmd = &cobra.Command{
	Use:   "list <config.yml>",
	Short: "List stored articles, newest first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(args[0])
		if err != nil {
			fatal("Failed to load config", err)
		}

		store := fsstore.NewStore(filepath.Join(cfg.FilePath, "articles.yml"), slog.Default())
		articles, err := store.LoadAll(context.Background())
		if err != nil {
			fatal("Failed to load articles", err)
		}

		for _, a := range core.Order(articles) {
			if listMatch != "" {
				ok, err := doublestar.Match(listMatch, a.ArticleID)
				if err != nil {
					fatal("Invalid match pattern", err)
				}
				if !ok {
					continue
				}
			}
			fmt.Printf("%s  %s  %s\n", a.Date, a.ArticleID, a.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listMatch, "match", "", "Filter by article ID glob (doublestar syntax)")
}
