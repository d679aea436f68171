package article

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bornholm/scribe/internal/config"
	"github.com/bornholm/scribe/internal/core/model"
	"github.com/bornholm/scribe/internal/core/port"
	"github.com/bornholm/scribe/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagDatabaseURL = "database-url"
	flagLimit       = "limit"
	flagID          = "id"
	flagTitle       = "title"
	flagContent     = "content"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "article",
		Usage: "Manage articles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagDatabaseURL,
				EnvVars:  []string{"SCRIBE_STORAGE_DATABASE_URL"},
				Usage:    "Store connection URL",
				Required: true,
			},
		},
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			createCommand(),
			updateCommand(),
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List articles",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  flagLimit,
				Value: 10,
				Usage: "Maximum number of articles to list",
			},
		},
		Action: func(cCtx *cli.Context) error {
			store, err := getArticleStore(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			limit := cCtx.Int(flagLimit)

			articles, err := store.QueryArticles(cCtx.Context, port.QueryArticlesOptions{Limit: &limit})
			if err != nil {
				return errors.WithStack(err)
			}

			for _, a := range articles {
				fmt.Fprintf(cCtx.App.Writer, "%s\t%s\n", a.ID(), a.Title())
			}

			return nil
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print an article",
		ArgsUsage: "<id>",
		Action: func(cCtx *cli.Context) error {
			id := cCtx.Args().First()
			if id == "" {
				return errors.New("missing article id")
			}

			store, err := getArticleStore(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			article, err := store.GetArticleByID(cCtx.Context, model.ArticleID(id))
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintf(cCtx.App.Writer, "# %s\n\n%s\n", article.Title(), article.Content())

			return nil
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an article",
		Flags: articleFlags(),
		Action: func(cCtx *cli.Context) error {
			title, content, err := getArticleFields(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := getArticleStore(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			article, err := store.CreateArticle(cCtx.Context, title, content)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(cCtx.App.Writer, article.ID())

			return nil
		},
	}
}

func updateCommand() *cli.Command {
	flags := append(articleFlags(), &cli.StringFlag{
		Name:     flagID,
		Usage:    "Identifier of the article to replace",
		Required: true,
	})

	return &cli.Command{
		Name:  "update",
		Usage: "Replace the title and content of an article",
		Flags: flags,
		Action: func(cCtx *cli.Context) error {
			title, content, err := getArticleFields(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := getArticleStore(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			article, err := store.ReplaceArticle(cCtx.Context, model.ArticleID(cCtx.String(flagID)), title, content)
			if err != nil {
				return errors.WithStack(err)
			}

			fmt.Fprintln(cCtx.App.Writer, article.ID())

			return nil
		},
	}
}

func articleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     flagTitle,
			Aliases:  []string{"t"},
			Usage:    "Article title",
			Required: true,
		},
		&cli.StringFlag{
			Name:     flagContent,
			Aliases:  []string{"c"},
			Usage:    "Article content, '-' to read it from stdin",
			Required: true,
		},
	}
}

func getArticleFields(cCtx *cli.Context) (string, string, error) {
	title := cCtx.String(flagTitle)
	content := cCtx.String(flagContent)

	if content == "-" {
		data, err := io.ReadAll(cCtx.App.Reader)
		if err != nil {
			return "", "", errors.Wrap(err, "could not read content from stdin")
		}

		content = string(data)
	}

	if missing := model.MissingArticleFields(title, content); len(missing) > 0 {
		return "", "", errors.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	return title, content, nil
}

func getArticleStore(cCtx *cli.Context) (port.ArticleStore, error) {
	conf := &config.Config{
		Logger: config.Logger{Level: slog.LevelError},
		Storage: config.Storage{
			Database: config.Database{
				URL: cCtx.String(flagDatabaseURL),
			},
		},
	}

	store, err := setup.NewArticleStoreFromConfig(cCtx.Context, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return store, nil
}
