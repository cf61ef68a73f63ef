package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldlewis/simpleblog/internal/config"
	fsstore "github.com/ldlewis/simpleblog/pkg/adapters/fs"
	"github.com/ldlewis/simpleblog/pkg/core"
)

var (
	postTitle       string
	postID          string
	postDescription string
	postDate        string
)

// postCmd is the offline counterpart of POST /articles: it appends a record
// straight to the store, no credentials involved.
var postCmd = &cobra.Command{
	Use:   "post <config.yml>",
	Short: "Append an article record to the store",
	Long: `Append one article record to the article list. The markdown body
is expected at articles/{id}.md under the content root and is not created
by this command.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if postID == "" {
			fmt.Println("Error: --id is required")
			cmd.Usage()
			os.Exit(1)
		}

		cfg, err := config.Load(args[0])
		if err != nil {
			fatal("Failed to load config", err)
		}

		if postDate == "" {
			postDate = time.Now().Format("2006-01-02")
		}

		store := fsstore.NewStore(filepath.Join(cfg.FilePath, "articles.yml"), slog.Default())
		article := core.Article{
			Title:       postTitle,
			ArticleID:   postID,
			Description: postDescription,
			Date:        postDate,
		}
		if err := store.Append(context.Background(), article); err != nil {
			fatal("Failed to append article", err)
		}

		fmt.Printf("Article '%s' appended.\n", postID)
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	postCmd.Flags().StringVar(&postID, "id", "", "Article ID (body filename without extension)")
	postCmd.Flags().StringVar(&postTitle, "title", "", "Article title")
	postCmd.Flags().StringVar(&postDescription, "description", "", "Short summary shown in previews and the feed")
	postCmd.Flags().StringVar(&postDate, "date", "", "Publication date, yyyy-mm-dd (defaults to today)")
	postCmd.MarkFlagRequired("id")
	postCmd.MarkFlagRequired("title")
}
