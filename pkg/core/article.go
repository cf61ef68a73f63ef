package core

import "fmt"

// Article is one blog post record as stored in the article list file.
// ArticleID doubles as the name of the markdown body file under articles/
// ({id}.md); the store does not enforce its uniqueness.
type Article struct {
	Title       string `json:"title" yaml:"title"`
	ArticleID   string `json:"article_id" yaml:"article_id"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
}

// PreviewHTML renders the short listing fragment used on the homepage and the
// article index. Fields are substituted verbatim, without escaping.
func (a Article) PreviewHTML() string {
	return fmt.Sprintf(`<div class='article_preview'>
<h2>%s</h2>
<div class='preview_content'>
<p class='article_timestamp'>%s</p>
<p>%s</p>
</div>
<a href='/articles/%s'>Read</a>
</div>
`, a.Title, a.Date, a.Description, a.ArticleID)
}

// RSSItem renders the article as an RSS 2.0 <item> fragment. pubDate carries
// the raw yyyy-mm-dd date string.
func (a Article) RSSItem(siteLink string) string {
	return fmt.Sprintf(`<item>
<title>%s</title>
<pubDate>%s</pubDate>
<description>%s</description>
<link>%s/articles/%s</link>
</item>
`, a.Title, a.Date, a.Description, siteLink, a.ArticleID)
}
