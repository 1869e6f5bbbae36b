package main

import (
	"fmt"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := wikicrawl.ArticleFilter{Limit: c.Limit}
	if c.Topic != "" {
		filter.Topic = &c.Topic
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikicrawl.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'wikicrawl crawl' to build the catalog.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d words\n", a.ID, a.Topic, a.PageTitle, a.WordCount)
	}

	return nil
}
