package main

import (
	"fmt"

	"github.com/fwojciec/mdscrape"
)

// errNoArchive is returned by archive commands when no database is configured.
var errNoArchive = mdscrape.Errorf(mdscrape.EINVALID, "no archive configured")

func requireArchive(deps *Dependencies) error {
	if deps.Articles == nil {
		fmt.Fprintln(deps.Stderr, "error: no archive configured. Set --db or MDSCRAPE_DB.")
		return errNoArchive
	}
	return nil
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if err := requireArchive(deps); err != nil {
		return err
	}

	filter := mdscrape.ArticleFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mdscrape.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'mdscrape scrape' with --db to archive some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", a.ID, a.ScrapedAt.Local().Format(mdscrape.TimestampLayout), a.Title, a.SourceURL)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if err := requireArchive(deps); err != nil {
		return err
	}

	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if mdscrape.ErrorCode(err) == mdscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'mdscrape list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdscrape.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintln(deps.Stdout, article.Markdown)
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return mdscrape.Errorf(mdscrape.EINVALID, "use --force to confirm deletion")
	}
	if err := requireArchive(deps); err != nil {
		return err
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if mdscrape.ErrorCode(err) == mdscrape.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'mdscrape list' to see archived articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", mdscrape.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %s\n", c.ID)
	return nil
}
