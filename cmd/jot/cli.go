package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/jotcli/jot/internal/config"
	"github.com/jotcli/jot/internal/errors"
	"github.com/jotcli/jot/internal/notion"
	"github.com/jotcli/jot/internal/ops"
	"github.com/jotcli/jot/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(client *notion.Client, cfg *config.Config, logger zerolog.Logger) *cli.App {
	app := &cli.App{
		Name:    "jot",
		Usage:   "Publish notes to a Notion database",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
		},
		Commands: []*cli.Command{
			createCmd(client, cfg),
			quickCmd(client, cfg),
			listCmd(client, cfg),
			appendCmd(client),
			searchCmd(client),
			databasesCmd(client),
			pageCmd(client),
			databaseCmd(client),
			queryCmd(client, cfg),
			initCmd(),
			webCmd(client, cfg, logger),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// createCmd creates the create command.
func createCmd(client *notion.Client, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a page with a title and body (body from args or stdin)",
		ArgsUsage: "<title> [text...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "tags", Usage: "Comma-separated tags (overrides configured defaults)"},
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"md"}, Usage: "Parse the body as markdown"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("title is required"))
			}

			body, err := bodyFromArgsOrStdin(c.Args().Tail())
			if err != nil {
				return outputError(err)
			}

			input := ops.CreateInput{
				Title:    c.Args().First(),
				Body:     body,
				Markdown: c.Bool("markdown"),
			}
			if c.IsSet("tags") {
				input.Tags = parseTags(c.String("tags"))
			}

			output, err := ops.Create(c.Context, client, cfg, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// quickCmd creates the quick command.
func quickCmd(client *notion.Client, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "quick",
		Usage:     "Publish a quick note; the title derives from the first line",
		ArgsUsage: "[text...]",
		Action: func(c *cli.Context) error {
			body, err := bodyFromArgsOrStdin(c.Args().Slice())
			if err != nil {
				return outputError(err)
			}
			if body == "" {
				return outputError(errors.NewInvalidRequest("note text must be given as arguments or piped via stdin"))
			}

			output, err := ops.Quick(c.Context, client, cfg, ops.QuickInput{Body: body})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(client *notion.Client, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the most recently edited pages",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum pages to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.List(c.Context, client, cfg, ops.ListInput{
				Limit: c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			printListing(os.Stdout, output)
			return nil
		},
	}
}

// appendCmd creates the append command.
func appendCmd(client *notion.Client) *cli.Command {
	return &cli.Command{
		Name:      "append",
		Usage:     "Append text blocks to an existing page",
		ArgsUsage: "<page_id> [text...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "markdown", Aliases: []string{"md"}, Usage: "Parse the body as markdown"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("page id is required"))
			}

			body, err := bodyFromArgsOrStdin(c.Args().Tail())
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Append(c.Context, client, ops.AppendInput{
				PageID:   c.Args().First(),
				Body:     body,
				Markdown: c.Bool("markdown"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// searchCmd creates the search command.
func searchCmd(client *notion.Client) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search pages across the workspace",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum results to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Search(c.Context, client, ops.SearchInput{
				Query: strings.Join(c.Args().Slice(), " "),
				Limit: c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// databasesCmd creates the databases command.
func databasesCmd(client *notion.Client) *cli.Command {
	return &cli.Command{
		Name:  "databases",
		Usage: "List databases shared with the integration",
		Action: func(c *cli.Context) error {
			output, err := ops.Databases(c.Context, client)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// pageCmd creates the page command.
func pageCmd(client *notion.Client) *cli.Command {
	return &cli.Command{
		Name:      "page",
		Usage:     "Fetch a page object by id",
		ArgsUsage: "<page_id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("page id is required"))
			}

			page, err := client.GetPage(c.Context, c.Args().First())
			if err != nil {
				return outputError(err)
			}

			return outputJSON(page)
		},
	}
}

// databaseCmd creates the database command.
func databaseCmd(client *notion.Client) *cli.Command {
	return &cli.Command{
		Name:      "database",
		Usage:     "Fetch a database object, including its property schema",
		ArgsUsage: "<database_id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("database id is required"))
			}

			db, err := client.GetDatabase(c.Context, c.Args().First())
			if err != nil {
				return outputError(err)
			}

			return outputJSON(db)
		},
	}
}

// queryCmd creates the query command.
func queryCmd(client *notion.Client, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Query a database, newest first (defaults to the configured one)",
		ArgsUsage: "[database_id]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum pages to return"},
		},
		Action: func(c *cli.Context) error {
			databaseID := cfg.DefaultDatabaseID
			if c.NArg() > 0 {
				databaseID = c.Args().First()
			}

			result, err := client.QueryDatabase(c.Context, databaseID, &notion.DatabaseQuery{
				Sorts:    []notion.SortSpec{{Timestamp: "last_edited_time", Direction: "descending"}},
				PageSize: c.Int("limit"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(result)
		},
	}
}

// initCmd creates the init command.
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a scaffold config file to ~/.jot/config.json",
		Action: func(c *cli.Context) error {
			path, err := config.Scaffold(config.DefaultDir())
			if err != nil {
				return outputError(err)
			}

			fmt.Printf("Wrote %s\nFill in notion_api_token and default_database_id before publishing.\n", path)
			return nil
		},
	}
}

// webCmd creates the web command.
func webCmd(client *notion.Client, cfg *config.Config, logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the local web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8379, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			// The startup message with the URL must be visible even
			// without --verbose.
			if logger.GetLevel() > zerolog.InfoLevel {
				logger = logger.Level(zerolog.InfoLevel)
			}
			srv := web.NewServer(client, cfg, Version, c.String("bind"), c.Int("port"), logger)
			if err := web.Run(srv, logger); err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if jotErr, ok := err.(*errors.JotError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", jotErr.Code, jotErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// printListing renders a listing in human-readable form.
func printListing(w io.Writer, output *ops.ListOutput) {
	if len(output.Items) == 0 {
		fmt.Fprintln(w, "No pages found.")
		return
	}

	label := output.Database
	if label == "" {
		label = "database"
	}
	fmt.Fprintf(w, "Recent pages in %s:\n", label)
	for i, item := range output.Items {
		fmt.Fprintf(w, "%2d. %s\n", i+1, item.Title)
		fmt.Fprintf(w, "    edited %s  %s\n", item.LastEditedTime.Local().Format("2006-01-02 15:04"), item.URL)
	}
}

// bodyFromArgsOrStdin joins positional args into a body, falling back
// to piped stdin when no args were given.
func bodyFromArgsOrStdin(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if !stdinHasData() {
		return "", nil
	}
	text, err := readStdin()
	if err != nil {
		return "", errors.NewInternal(err)
	}
	return text, nil
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseTags splits a comma-separated string into a slice of tags.
func parseTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
