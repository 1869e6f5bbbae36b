package main

import (
	"fmt"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
	"github.com/PamanGie/crawling-wikipedia/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, wikicrawl.ArticleFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikicrawl.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles to export. Use 'wikicrawl crawl' to build the catalog.")
		return nil
	}

	writer, err := fs.NewWriter(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open output %q: %v\n", c.Output, err)
		return err
	}
	defer writer.Close()

	for _, a := range articles {
		if err := writer.CreateArticle(deps.Ctx, a); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", wikicrawl.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s\n", len(articles), c.Output)
	return nil
}
